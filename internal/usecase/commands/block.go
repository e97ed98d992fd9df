package commands

import (
	"context"
	"log/slog"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/clock"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/queries"
	"booking-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBlockNotFound = errs.New("block not found")

type CreateBlockInput struct {
	Range  daterange.DateRange
	Reason string
}

type BlockCommands interface {
	Create(ctx context.Context, in CreateBlockInput) (*queries.BlockView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blockCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBlockCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BlockCommands {
	return &blockCommandsImpl{uow: uow, clock: clk, logger: logger}
}

// Create stores the block without checking bookings or other blocks.
// Existing bookings inside the window are left untouched.
func (uc *blockCommandsImpl) Create(ctx context.Context, in CreateBlockInput) (*queries.BlockView, error) {
	b, err := block.NewBlock(uuid.Nil, in.Range, in.Reason, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blocks().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("block created", "block_id", b.ID(), "dates", in.Range.String())
	return queries.NewBlockView(b), nil
}

func (uc *blockCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blocks().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(ErrBlockNotFound, errs.ErrNotFound)
		}
		return err
	}

	uc.logger.Info("block deleted", "block_id", id)
	return nil
}
