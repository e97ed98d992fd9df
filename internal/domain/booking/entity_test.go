//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/pkg/errs"
	"booking-manager/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
	kind   error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "2024-01-05/2024-01-10", actual.Dates().String())
		assert.Equal(t, "Ana Souza, 2 adults", actual.GuestDetails().String())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("guest details validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestDetails("A") },
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestDetails(strings.Repeat("a", booking.MaxGuestDetailsLength)) },
			},
			{
				name:   "multibyte characters count once",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestDetails(strings.Repeat("é", booking.MaxGuestDetailsLength)) },
			},
			{
				name:   "empty",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestDetails("") },
				errIs:  booking.ErrEmptyGuestDetails,
				kind:   errs.ErrValidation,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestDetails(" \t ") },
				errIs:  booking.ErrEmptyGuestDetails,
				kind:   errs.ErrValidation,
			},
			{
				name:   "too long",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestDetails(strings.Repeat("a", booking.MaxGuestDetailsLength+1)) },
				errIs:  booking.ErrGuestDetailsTooLong,
				kind:   errs.ErrValidation,
			},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single day",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2024-03-01", "2024-03-01") },
			},
			{
				name:   "start after end",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2024-03-02", "2024-03-01") },
				errIs:  daterange.ErrStartAfterEnd,
				kind:   errs.ErrInvalidRange,
			},
			{
				name:   "malformed date",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("03/01/2024", "2024-03-05") },
				errIs:  daterange.ErrMalformedDate,
				kind:   errs.ErrInvalidRange,
			},
		})
	})

	t.Run("missing range", func(t *testing.T) {
		actual, err := booking.NewBooking(uuid.Nil, daterange.DateRange{}, "guest", time.Now())
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrMissingRange)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("guest details are trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithGuestDetails("  Bea  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Bea", actual.GuestDetails().String())
	})

	t.Run("given id is kept", func(t *testing.T) {
		id := uuid.New()
		actual, err := builder.NewBookingBuilder().WithID(id).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, id, actual.ID())
	})
}

func TestBooking_Reschedule(t *testing.T) {
	original, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	later := original.CreatedAt().Add(time.Hour)
	next, err := daterange.Parse("2024-04-01", "2024-04-03")
	require.NoError(t, err)

	require.NoError(t, original.Reschedule(next, later))
	assert.True(t, original.Dates().Equal(next))
	assert.Equal(t, later, original.UpdatedAt())
	assert.Equal(t, "Ana Souza, 2 adults", original.GuestDetails().String())

	err = original.Reschedule(daterange.DateRange{}, later)
	require.ErrorIs(t, err, booking.ErrMissingRange)
}

func TestBooking_Revise(t *testing.T) {
	t.Run("replaces dates and guest", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		next, err := daterange.Parse("2024-05-01", "2024-05-02")
		require.NoError(t, err)

		require.NoError(t, b.Revise(next, "Carl", b.CreatedAt()))
		assert.True(t, b.Dates().Equal(next))
		assert.Equal(t, "Carl", b.GuestDetails().String())
	})

	t.Run("invalid guest leaves booking untouched", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		before := b.Dates()
		next, err := daterange.Parse("2024-05-01", "2024-05-02")
		require.NoError(t, err)

		err = b.Revise(next, "   ", b.CreatedAt())
		require.ErrorIs(t, err, booking.ErrEmptyGuestDetails)
		assert.True(t, b.Dates().Equal(before))
	})
}

func TestBooking_Clone(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	c := b.Clone()
	next, err := daterange.Parse("2025-01-01", "2025-01-02")
	require.NoError(t, err)
	require.NoError(t, c.Reschedule(next, time.Now()))

	assert.False(t, b.Dates().Equal(c.Dates()))
	assert.Equal(t, b.ID(), c.ID())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				assert.True(t, errs.Is(err, c.errIs), "expected %v, got %v", c.errIs, err)
				assert.True(t, errs.Is(err, c.kind), "expected kind %v, got %v", c.kind, err)
			}
		})
	}
}
