//go:build unit

package memory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"
	"booking-manager/internal/infra/memory"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, start, end string) *booking.Booking {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	b, err := booking.NewBooking(uuid.Nil, r, "guest", time.Now())
	require.NoError(t, err)
	return b
}

func newUoW() *memory.UoW {
	return memory.NewUoW(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func count(t *testing.T, u *memory.UoW) int {
	t.Helper()
	var n int
	err := u.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		all, err := tx.Bookings().List(ctx)
		n = len(all)
		return err
	})
	require.NoError(t, err)
	return n
}

func TestUoW_Within(t *testing.T) {
	ctx := context.Background()

	t.Run("failed unit leaves no trace", func(t *testing.T) {
		u := newUoW()
		boom := errs.New("boom")

		err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Bookings().Create(ctx, newBooking(t, "2024-01-01", "2024-01-02")))
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 0, count(t, u))
	})

	t.Run("cancelled context aborts before commit", func(t *testing.T) {
		u := newUoW()
		cctx, cancel := context.WithCancel(ctx)

		err := u.Within(cctx, func(ctx context.Context, tx shared.Tx) error {
			cancel()
			return tx.Bookings().Create(ctx, newBooking(t, "2024-01-01", "2024-01-02"))
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, count(t, u))
	})

	t.Run("stored bookings are isolated from caller mutation", func(t *testing.T) {
		u := newUoW()
		b := newBooking(t, "2024-01-01", "2024-01-02")
		require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, b)
		}))

		moved, err := daterange.Parse("2025-01-01", "2025-01-02")
		require.NoError(t, err)
		require.NoError(t, b.Reschedule(moved, time.Now()))

		require.NoError(t, u.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			got, err := tx.Bookings().FindByID(ctx, b.ID())
			require.NoError(t, err)
			assert.Equal(t, "2024-01-01/2024-01-02", got.Dates().String())
			return nil
		}))
	})
}

func TestUoW_WithinReadOnly(t *testing.T) {
	u := newUoW()
	err := u.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, newBooking(t, "2024-01-01", "2024-01-02"))
	})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestBookingRepository_Errors(t *testing.T) {
	ctx := context.Background()
	u := newUoW()
	b := newBooking(t, "2024-01-01", "2024-01-02")

	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return tx.Bookings().Create(ctx, b)
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Update(ctx, b)
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blocks().Delete(ctx, uuid.New())
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
