package queries

import (
	"context"
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	ListAll(ctx context.Context) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindOverlapping(ctx context.Context, r daterange.DateRange) ([]*BookingView, error)
	FindByDate(ctx context.Context, day time.Time) ([]*BookingView, error)
	FindByGuestDetails(ctx context.Context, guestDetails string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BookingRepository) ([]*booking.Booking, error) {
		return repo.List(ctx)
	})
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return err
		}
		view = NewBookingView(b)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) FindOverlapping(ctx context.Context, r daterange.DateRange) ([]*BookingView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BookingRepository) ([]*booking.Booking, error) {
		return repo.FindOverlapping(ctx, r)
	})
}

func (q *bookingQueriesImpl) FindByDate(ctx context.Context, day time.Time) ([]*BookingView, error) {
	return q.list(ctx, func(ctx context.Context, repo shared.BookingRepository) ([]*booking.Booking, error) {
		return repo.FindByDate(ctx, daterange.Day(day))
	})
}

// Exact match after trimming, the same normalisation applied on write.
func (q *bookingQueriesImpl) FindByGuestDetails(ctx context.Context, guestDetails string) ([]*BookingView, error) {
	guest, err := booking.NewGuestDetails(guestDetails)
	if err != nil {
		return nil, err
	}
	return q.list(ctx, func(ctx context.Context, repo shared.BookingRepository) ([]*booking.Booking, error) {
		return repo.FindByGuestDetails(ctx, guest.String())
	})
}

func (q *bookingQueriesImpl) list(
	ctx context.Context,
	find func(ctx context.Context, repo shared.BookingRepository) ([]*booking.Booking, error),
) ([]*BookingView, error) {
	var views []*BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := find(ctx, tx.Bookings())
		if err != nil {
			return err
		}
		views = bookingViews(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
