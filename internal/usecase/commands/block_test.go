//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booking-manager/internal/infra/memory"
	"booking-manager/internal/pkg/clock"
	"booking-manager/internal/pkg/config"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/commands"
	"booking-manager/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlockFixture(t *testing.T) (commands.BlockCommands, commands.BookingCommands, queries.BlockQueries) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	uow := memory.NewUoW(logger)
	return commands.NewBlockCommands(uow, clk, logger),
		commands.NewBookingCommands(uow, clk, config.NewTestConfig(), logger),
		queries.NewBlockQueries(uow)
}

func TestBlockCommands_Create(t *testing.T) {
	ctx := context.Background()
	blocks, bookings, q := newBlockFixture(t)

	t.Run("overlapping blocks are allowed", func(t *testing.T) {
		_, err := blocks.Create(ctx, commands.CreateBlockInput{Range: dates(t, "2024-02-01", "2024-02-05"), Reason: "Roof"})
		require.NoError(t, err)
		_, err = blocks.Create(ctx, commands.CreateBlockInput{Range: dates(t, "2024-02-03", "2024-02-08"), Reason: "Plumbing"})
		require.NoError(t, err)

		all, err := q.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Roof", all[0].Reason)
		assert.Equal(t, "Plumbing", all[1].Reason)
	})

	t.Run("block over an existing booking is accepted", func(t *testing.T) {
		_, err := bookings.Create(ctx, commands.CreateBookingInput{Range: dates(t, "2024-03-01", "2024-03-04"), GuestDetails: "Ana"})
		require.NoError(t, err)

		_, err = blocks.Create(ctx, commands.CreateBlockInput{Range: dates(t, "2024-03-02", "2024-03-02"), Reason: "Inspection"})
		require.NoError(t, err)
	})

	t.Run("blank reason is rejected", func(t *testing.T) {
		_, err := blocks.Create(ctx, commands.CreateBlockInput{Range: dates(t, "2024-04-01", "2024-04-02"), Reason: "  "})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestBlockCommands_Delete(t *testing.T) {
	ctx := context.Background()
	blocks, bookings, q := newBlockFixture(t)

	created, err := blocks.Create(ctx, commands.CreateBlockInput{Range: dates(t, "2024-02-01", "2024-02-05"), Reason: "Roof"})
	require.NoError(t, err)

	_, err = bookings.Create(ctx, commands.CreateBookingInput{Range: dates(t, "2024-02-04", "2024-02-06"), GuestDetails: "Ana"})
	require.True(t, errs.Is(err, errs.ErrConflict))

	require.NoError(t, blocks.Delete(ctx, created.ID))

	_, err = bookings.Create(ctx, commands.CreateBookingInput{Range: dates(t, "2024-02-04", "2024-02-06"), GuestDetails: "Ana"})
	require.NoError(t, err)

	all, err := q.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = blocks.Delete(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, errs.Is(err, commands.ErrBlockNotFound))
}
