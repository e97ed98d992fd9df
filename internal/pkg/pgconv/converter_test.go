//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"booking-manager/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	in := time.Date(2024, 2, 29, 23, 59, 0, 0, time.FixedZone("JST", 9*3600))

	pd := pgconv.DateToPgtype(in)
	require.True(t, pd.Valid)

	out, err := pgconv.DateFromPgtype(pd)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), out)
}

func TestDateFromPgtype_Invalid(t *testing.T) {
	_, err := pgconv.DateFromPgtype(pgtype.Date{})
	assert.ErrorIs(t, err, pgconv.ErrInvalidDate)

	_, err = pgconv.DateFromPgtype(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity})
	assert.ErrorIs(t, err, pgconv.ErrInvalidDate)
}

func TestUUID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgtype.UUID{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
