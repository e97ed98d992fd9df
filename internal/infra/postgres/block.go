package postgres

import (
	"context"
	"log/slog"
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const blockColumns = `id, start_date, end_date, reason, created_at`

type BlockRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewBlockRepository(db DBTX, logger *slog.Logger) *BlockRepository {
	return &BlockRepository{db: db, logger: logger}
}

func (r *BlockRepository) Create(ctx context.Context, b *block.Block) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blocks (`+blockColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.Reason(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create block", err)
	}
	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blocks WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapErr(r.logger, "failed to delete block", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "block not found", nil)
	}
	return nil
}

func (r *BlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	rows, err := r.db.Query(ctx, `SELECT `+blockColumns+` FROM blocks WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to find block", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBlock)
	if err != nil {
		return nil, wrapErr(r.logger, "block not found", err)
	}
	return b, nil
}

func (r *BlockRepository) List(ctx context.Context) ([]*block.Block, error) {
	return r.query(ctx, "failed to list blocks", `SELECT `+blockColumns+` FROM blocks ORDER BY seq`)
}

func (r *BlockRepository) FindOverlapping(ctx context.Context, dates daterange.DateRange) ([]*block.Block, error) {
	return r.query(ctx, "failed to find overlapping blocks",
		`SELECT `+blockColumns+` FROM blocks WHERE start_date <= $2 AND $1 <= end_date ORDER BY seq`,
		pgconv.DateToPgtype(dates.Start()), pgconv.DateToPgtype(dates.End()))
}

func (r *BlockRepository) FindByStartDate(ctx context.Context, day time.Time) ([]*block.Block, error) {
	return r.query(ctx, "failed to find blocks by start date",
		`SELECT `+blockColumns+` FROM blocks WHERE start_date = $1 ORDER BY seq`, pgconv.DateToPgtype(day))
}

func (r *BlockRepository) FindByEndDate(ctx context.Context, day time.Time) ([]*block.Block, error) {
	return r.query(ctx, "failed to find blocks by end date",
		`SELECT `+blockColumns+` FROM blocks WHERE end_date = $1 ORDER BY seq`, pgconv.DateToPgtype(day))
}

func (r *BlockRepository) query(ctx context.Context, msg, sql string, args ...any) ([]*block.Block, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(r.logger, msg, err)
	}
	out, err := pgx.CollectRows(rows, scanBlock)
	if err != nil {
		return nil, wrapErr(r.logger, msg, err)
	}
	return out, nil
}

func scanBlock(row pgx.CollectableRow) (*block.Block, error) {
	var (
		id         pgtype.UUID
		start, end pgtype.Date
		reason     string
		createdAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &start, &end, &reason, &createdAt); err != nil {
		return nil, err
	}
	dates, err := toRange(start, end)
	if err != nil {
		return nil, err
	}
	return block.ReconstructBlock(pgconv.UUIDFromPgtype(id), dates, reason, pgconv.TimeFromPgtype(createdAt)), nil
}
