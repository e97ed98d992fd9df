//go:build unit

package availability_test

import (
	"testing"

	"booking-manager/internal/domain/availability"
	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupant(t *testing.T, kind availability.OccupantKind, start, end string) availability.Occupant {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	return availability.Occupant{Kind: kind, ID: uuid.New(), Dates: r}
}

func candidate(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	return r
}

func TestEvaluate(t *testing.T) {
	existing := occupant(t, availability.KindBooking, "2024-01-05", "2024-01-10")
	maintenance := occupant(t, availability.KindBlock, "2024-02-01", "2024-02-03")
	bookings := []availability.Occupant{existing}
	blocks := []availability.Occupant{maintenance}

	cases := []struct {
		name      string
		start     string
		end       string
		exclude   *uuid.UUID
		available bool
		conflicts []availability.Occupant
	}{
		{name: "inside an existing booking", start: "2024-01-07", end: "2024-01-08", conflicts: bookings},
		{name: "touching the last day", start: "2024-01-10", end: "2024-01-12", conflicts: bookings},
		{name: "touching the first day", start: "2024-01-01", end: "2024-01-05", conflicts: bookings},
		{name: "day after the booking", start: "2024-01-11", end: "2024-01-12", available: true},
		{name: "single day inside a block", start: "2024-02-02", end: "2024-02-02", conflicts: blocks},
		{name: "single day free", start: "2024-03-01", end: "2024-03-01", available: true},
		{name: "spanning booking and block", start: "2024-01-01", end: "2024-02-28", conflicts: []availability.Occupant{existing, maintenance}},
		{name: "own booking is excluded", start: "2024-01-06", end: "2024-01-09", exclude: &existing.ID, available: true},
		{name: "exclusion does not hide blocks", start: "2024-02-03", end: "2024-02-04", exclude: &existing.ID, conflicts: blocks},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := availability.Evaluate(candidate(t, c.start, c.end), bookings, blocks, c.exclude)

			assert.Equal(t, c.available, v.Available())
			assert.Equal(t, c.conflicts, v.Conflicts)
		})
	}
}

func TestEvaluate_EmptyStores(t *testing.T) {
	v := availability.Evaluate(candidate(t, "2024-01-01", "2024-12-31"), nil, nil, nil)
	assert.True(t, v.Available())
	assert.Empty(t, v.Conflicts)
}
