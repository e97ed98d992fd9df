package gormstore

import (
	"context"
	"log/slog"
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blockRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (r *blockRepository) Create(ctx context.Context, b *block.Block) error {
	m := toBlockRow(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr(r.logger, "failed to create block", err)
	}
	return nil
}

func (r *blockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&blockRow{})
	if tx.Error != nil {
		return wrapErr(r.logger, "failed to delete block", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "block not found", nil)
	}
	return nil
}

func (r *blockRepository) FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	var m blockRow
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, wrapErr(r.logger, "block not found", err)
	}
	b, err := toDomainBlock(m)
	if err != nil {
		return nil, wrapErr(r.logger, "corrupt block row", err)
	}
	return b, nil
}

func (r *blockRepository) List(ctx context.Context) ([]*block.Block, error) {
	return r.find(ctx, "failed to list blocks", r.db)
}

func (r *blockRepository) FindOverlapping(ctx context.Context, dates daterange.DateRange) ([]*block.Block, error) {
	return r.find(ctx, "failed to find overlapping blocks",
		r.db.Where("start_date <= ? AND end_date >= ?", dates.End(), dates.Start()))
}

func (r *blockRepository) FindByStartDate(ctx context.Context, day time.Time) ([]*block.Block, error) {
	return r.find(ctx, "failed to find blocks by start date", r.db.Where("start_date = ?", day))
}

func (r *blockRepository) FindByEndDate(ctx context.Context, day time.Time) ([]*block.Block, error) {
	return r.find(ctx, "failed to find blocks by end date", r.db.Where("end_date = ?", day))
}

func (r *blockRepository) find(ctx context.Context, msg string, q *gorm.DB) ([]*block.Block, error) {
	var rows []blockRow
	if err := q.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, wrapErr(r.logger, msg, err)
	}
	out := make([]*block.Block, 0, len(rows))
	for _, m := range rows {
		b, err := toDomainBlock(m)
		if err != nil {
			return nil, wrapErr(r.logger, "corrupt block row", err)
		}
		out = append(out, b)
	}
	return out, nil
}
