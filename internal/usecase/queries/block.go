package queries

import (
	"context"
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/usecase/shared"
)

type BlockQueries interface {
	ListAll(ctx context.Context) ([]*BlockView, error)
	FindInRange(ctx context.Context, r daterange.DateRange) ([]*BlockView, error)
	FindByStartDate(ctx context.Context, day time.Time) ([]*BlockView, error)
	FindByEndDate(ctx context.Context, day time.Time) ([]*BlockView, error)
}

type blockQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBlockQueries(uow shared.UnitOfWork) BlockQueries {
	return &blockQueriesImpl{uow: uow}
}

func (q *blockQueriesImpl) ListAll(ctx context.Context) ([]*BlockView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BlockRepository) ([]*block.Block, error) {
		return repo.List(ctx)
	})
}

func (q *blockQueriesImpl) FindInRange(ctx context.Context, r daterange.DateRange) ([]*BlockView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BlockRepository) ([]*block.Block, error) {
		return repo.FindOverlapping(ctx, r)
	})
}

func (q *blockQueriesImpl) FindByStartDate(ctx context.Context, day time.Time) ([]*BlockView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BlockRepository) ([]*block.Block, error) {
		return repo.FindByStartDate(ctx, daterange.Day(day))
	})
}

func (q *blockQueriesImpl) FindByEndDate(ctx context.Context, day time.Time) ([]*BlockView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BlockRepository) ([]*block.Block, error) {
		return repo.FindByEndDate(ctx, daterange.Day(day))
	})
}

func (q *blockQueriesImpl) list(
	ctx context.Context,
	find func(ctx context.Context, repo shared.BlockRepository) ([]*block.Block, error),
) ([]*BlockView, error) {
	var views []*BlockView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := find(ctx, tx.Blocks())
		if err != nil {
			return err
		}
		views = blockViews(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
