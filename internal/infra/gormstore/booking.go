package gormstore

import (
	"context"
	"log/slog"
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	m := toBookingRow(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	m := toBookingRow(b)
	tx := r.db.WithContext(ctx).
		Model(&bookingRow{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"start_date":    m.StartDate,
			"end_date":      m.EndDate,
			"guest_details": m.GuestDetails,
			"updated_at":    m.UpdatedAt,
		})
	if tx.Error != nil {
		return wrapErr(r.logger, "failed to update booking", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&bookingRow{})
	if tx.Error != nil {
		return wrapErr(r.logger, "failed to delete booking", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var m bookingRow
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, wrapErr(r.logger, "booking not found", err)
	}
	b, err := toDomainBooking(m)
	if err != nil {
		return nil, wrapErr(r.logger, "corrupt booking row", err)
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	return r.find(ctx, "failed to list bookings", r.db)
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, dates daterange.DateRange) ([]*booking.Booking, error) {
	return r.find(ctx, "failed to find overlapping bookings",
		r.db.Where("start_date <= ? AND end_date >= ?", dates.End(), dates.Start()))
}

func (r *bookingRepository) FindByDate(ctx context.Context, day time.Time) ([]*booking.Booking, error) {
	return r.find(ctx, "failed to find bookings by date",
		r.db.Where("start_date <= ? AND end_date >= ?", day, day))
}

func (r *bookingRepository) FindByGuestDetails(ctx context.Context, guestDetails string) ([]*booking.Booking, error) {
	return r.find(ctx, "failed to find bookings by guest details",
		r.db.Where("guest_details = ?", guestDetails))
}

func (r *bookingRepository) find(ctx context.Context, msg string, q *gorm.DB) ([]*booking.Booking, error) {
	var rows []bookingRow
	if err := q.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, wrapErr(r.logger, msg, err)
	}
	out := make([]*booking.Booking, 0, len(rows))
	for _, m := range rows {
		b, err := toDomainBooking(m)
		if err != nil {
			return nil, wrapErr(r.logger, "corrupt booking row", err)
		}
		out = append(out, b)
	}
	return out, nil
}
