package memory

import (
	"context"
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"

	"github.com/google/uuid"
)

type blockRepository struct {
	tx *memTx
}

func (r *blockRepository) Create(_ context.Context, b *block.Block) error {
	if err := r.tx.checkWritable("create block"); err != nil {
		return err
	}
	if r.indexOf(b.ID()) >= 0 {
		return infra.WrapRepoErr(r.tx.logger, infra.KindDuplicateKey, "block already exists", nil)
	}
	r.tx.state.blocks = append(r.tx.state.blocks, b)
	return nil
}

func (r *blockRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.tx.checkWritable("delete block"); err != nil {
		return err
	}
	i := r.indexOf(id)
	if i < 0 {
		return infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "block not found", nil)
	}
	blocks := r.tx.state.blocks
	r.tx.state.blocks = append(blocks[:i:i], blocks[i+1:]...)
	return nil
}

func (r *blockRepository) FindByID(_ context.Context, id uuid.UUID) (*block.Block, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "block not found", nil)
	}
	return r.tx.state.blocks[i], nil
}

func (r *blockRepository) List(_ context.Context) ([]*block.Block, error) {
	return r.filter(func(*block.Block) bool { return true }), nil
}

func (r *blockRepository) FindOverlapping(_ context.Context, dates daterange.DateRange) ([]*block.Block, error) {
	return r.filter(func(b *block.Block) bool { return b.Dates().Overlaps(dates) }), nil
}

func (r *blockRepository) FindByStartDate(_ context.Context, day time.Time) ([]*block.Block, error) {
	d := daterange.Day(day)
	return r.filter(func(b *block.Block) bool { return b.Dates().Start().Equal(d) }), nil
}

func (r *blockRepository) FindByEndDate(_ context.Context, day time.Time) ([]*block.Block, error) {
	d := daterange.Day(day)
	return r.filter(func(b *block.Block) bool { return b.Dates().End().Equal(d) }), nil
}

func (r *blockRepository) indexOf(id uuid.UUID) int {
	for i, b := range r.tx.state.blocks {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

func (r *blockRepository) filter(keep func(*block.Block) bool) []*block.Block {
	out := make([]*block.Block, 0)
	for _, b := range r.tx.state.blocks {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
