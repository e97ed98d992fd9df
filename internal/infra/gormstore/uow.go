// Package gormstore persists bookings and blocks in an embedded SQLite
// database through gorm. SQLite has no advisory locks, so writers are
// serialized in process.
package gormstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"booking-manager/internal/infra"
	"booking-manager/internal/usecase/shared"

	"gorm.io/gorm"
)

type UoW struct {
	mu     sync.RWMutex
	db     *gorm.DB
	logger *slog.Logger
}

func NewUoW(db *gorm.DB, logger *slog.Logger) *UoW {
	return &UoW{db: db, logger: logger}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&bookingRow{}, &blockRow{})
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormTx{db: tx, logger: u.logger})
	})
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormTx{db: tx, logger: u.logger})
	})
}

type gormTx struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (t *gormTx) Bookings() shared.BookingRepository {
	return &bookingRepository{db: t.db, logger: t.logger}
}

func (t *gormTx) Blocks() shared.BlockRepository {
	return &blockRepository{db: t.db, logger: t.logger}
}

func wrapErr(logger *slog.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
	default:
		return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
	}
}
