package postgres

import (
	"context"
	"log/slog"
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, start_date, end_date, guest_details, created_at, updated_at`

type BookingRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewBookingRepository(db DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.GuestDetails().String(),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET start_date = $2, end_date = $3, guest_details = $4, updated_at = $5 WHERE id = $1`,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.GuestDetails().String(),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapErr(r.logger, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to find booking", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		return nil, wrapErr(r.logger, "booking not found", err)
	}
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	return r.query(ctx, "failed to list bookings",
		`SELECT `+bookingColumns+` FROM bookings ORDER BY seq`)
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, dates daterange.DateRange) ([]*booking.Booking, error) {
	return r.query(ctx, "failed to find overlapping bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE start_date <= $2 AND $1 <= end_date ORDER BY seq`,
		pgconv.DateToPgtype(dates.Start()), pgconv.DateToPgtype(dates.End()))
}

func (r *BookingRepository) FindByDate(ctx context.Context, day time.Time) ([]*booking.Booking, error) {
	return r.query(ctx, "failed to find bookings by date",
		`SELECT `+bookingColumns+` FROM bookings WHERE start_date <= $1 AND $1 <= end_date ORDER BY seq`,
		pgconv.DateToPgtype(day))
}

func (r *BookingRepository) FindByGuestDetails(ctx context.Context, guestDetails string) ([]*booking.Booking, error) {
	return r.query(ctx, "failed to find bookings by guest details",
		`SELECT `+bookingColumns+` FROM bookings WHERE guest_details = $1 ORDER BY seq`,
		guestDetails)
}

func (r *BookingRepository) query(ctx context.Context, msg, sql string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(r.logger, msg, err)
	}
	out, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, wrapErr(r.logger, msg, err)
	}
	return out, nil
}

func scanBooking(row pgx.CollectableRow) (*booking.Booking, error) {
	var (
		id           pgtype.UUID
		start, end   pgtype.Date
		guestDetails string
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &start, &end, &guestDetails, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	dates, err := toRange(start, end)
	if err != nil {
		return nil, err
	}
	guest, err := booking.NewGuestDetails(guestDetails)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(id),
		dates,
		guest,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func toRange(start, end pgtype.Date) (daterange.DateRange, error) {
	s, err := pgconv.DateFromPgtype(start)
	if err != nil {
		return daterange.DateRange{}, err
	}
	e, err := pgconv.DateFromPgtype(end)
	if err != nil {
		return daterange.DateRange{}, err
	}
	return daterange.New(s, e)
}
