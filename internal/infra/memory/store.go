// Package memory keeps bookings and blocks in process memory. A single
// RWMutex serializes writers, which is enough for one shared resource.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/booking"
	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/shared"
)

var errReadOnly = errs.New("write attempted in read-only unit of work")

type state struct {
	bookings []*booking.Booking
	blocks   []*block.Block
}

func (s *state) clone() *state {
	c := &state{
		bookings: make([]*booking.Booking, len(s.bookings)),
		blocks:   make([]*block.Block, len(s.blocks)),
	}
	for i, b := range s.bookings {
		c.bookings[i] = b.Clone()
	}
	// blocks are never mutated after creation
	copy(c.blocks, s.blocks)
	return c
}

type UoW struct {
	mu     sync.RWMutex
	state  *state
	logger *slog.Logger
}

func NewUoW(logger *slog.Logger) *UoW {
	return &UoW{state: &state{}, logger: logger}
}

// Within stages every change on a copy of the state. The copy replaces the
// live state only when fn succeeds and ctx is still alive.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	staged := u.state.clone()
	if err := fn(ctx, &memTx{state: staged, logger: u.logger}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.state = staged
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, &memTx{state: u.state, readOnly: true, logger: u.logger})
}

type memTx struct {
	state    *state
	readOnly bool
	logger   *slog.Logger
}

func (t *memTx) Bookings() shared.BookingRepository {
	return &bookingRepository{tx: t}
}

func (t *memTx) Blocks() shared.BlockRepository {
	return &blockRepository{tx: t}
}

func (t *memTx) checkWritable(op string) error {
	if t.readOnly {
		return infra.WrapRepoErr(t.logger, infra.KindDBFailure, op, errReadOnly)
	}
	return nil
}
