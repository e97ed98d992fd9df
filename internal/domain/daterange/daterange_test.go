//go:build unit

package daterange_test

import (
	"testing"
	"time"

	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("single day range is valid", func(t *testing.T) {
		r := mustParse(t, "2024-01-05", "2024-01-05")
		assert.Equal(t, 1, r.Days())
		assert.Equal(t, "2024-01-05/2024-01-05", r.String())
	})

	t.Run("start after end is an invalid range", func(t *testing.T) {
		_, err := daterange.Parse("2024-01-10", "2024-01-05")
		require.ErrorIs(t, err, daterange.ErrStartAfterEnd)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("zero dates are rejected", func(t *testing.T) {
		_, err := daterange.New(time.Time{}, time.Now())
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("time of day and zone are dropped", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		r, err := daterange.New(
			time.Date(2024, 1, 5, 23, 30, 0, 0, tokyo),
			time.Date(2024, 1, 6, 1, 0, 0, 0, tokyo),
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), r.End())
	})
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "iso date", input: "2024-02-29"},
		{name: "surrounding whitespace", input: " 2024-02-29 "},
		{name: "empty", input: "", errIs: daterange.ErrMissingDate},
		{name: "timestamp", input: "2024-02-29T10:00:00Z", errIs: daterange.ErrMalformedDate},
		{name: "impossible day", input: "2023-02-29", errIs: daterange.ErrMalformedDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := daterange.ParseDate(tc.input)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2024-02-29", d.Format(daterange.Layout))
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := mustParse(t, "2024-01-05", "2024-01-10")

	testCases := []struct {
		name     string
		other    daterange.DateRange
		expected bool
	}{
		{name: "partial overlap on the right", other: mustParse(t, "2024-01-07", "2024-01-12"), expected: true},
		{name: "partial overlap on the left", other: mustParse(t, "2024-01-01", "2024-01-05"), expected: true},
		{name: "touching end day", other: mustParse(t, "2024-01-10", "2024-01-10"), expected: true},
		{name: "contained", other: mustParse(t, "2024-01-06", "2024-01-08"), expected: true},
		{name: "containing", other: mustParse(t, "2024-01-01", "2024-01-31"), expected: true},
		{name: "adjacent after", other: mustParse(t, "2024-01-11", "2024-01-15"), expected: false},
		{name: "adjacent before", other: mustParse(t, "2024-01-01", "2024-01-04"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, a.Overlaps(tc.other))
			assert.Equal(t, tc.expected, tc.other.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	r := mustParse(t, "2024-01-05", "2024-01-10")

	assert.True(t, r.Contains(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, daterange.Single(r.End()).Equal(mustParse(t, "2024-01-10", "2024-01-10")))
}
