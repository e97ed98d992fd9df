package memory

import (
	"context"
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"

	"github.com/google/uuid"
)

type bookingRepository struct {
	tx *memTx
}

func (r *bookingRepository) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.checkWritable("create booking"); err != nil {
		return err
	}
	if r.indexOf(b.ID()) >= 0 {
		return infra.WrapRepoErr(r.tx.logger, infra.KindDuplicateKey, "booking already exists", nil)
	}
	r.tx.state.bookings = append(r.tx.state.bookings, b.Clone())
	return nil
}

func (r *bookingRepository) Update(_ context.Context, b *booking.Booking) error {
	if err := r.tx.checkWritable("update booking"); err != nil {
		return err
	}
	i := r.indexOf(b.ID())
	if i < 0 {
		return infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "booking not found", nil)
	}
	r.tx.state.bookings[i] = b.Clone()
	return nil
}

func (r *bookingRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.tx.checkWritable("delete booking"); err != nil {
		return err
	}
	i := r.indexOf(id)
	if i < 0 {
		return infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "booking not found", nil)
	}
	bookings := r.tx.state.bookings
	r.tx.state.bookings = append(bookings[:i:i], bookings[i+1:]...)
	return nil
}

func (r *bookingRepository) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "booking not found", nil)
	}
	return r.tx.state.bookings[i].Clone(), nil
}

func (r *bookingRepository) List(_ context.Context) ([]*booking.Booking, error) {
	return r.filter(func(*booking.Booking) bool { return true }), nil
}

func (r *bookingRepository) FindOverlapping(_ context.Context, dates daterange.DateRange) ([]*booking.Booking, error) {
	return r.filter(func(b *booking.Booking) bool { return b.Dates().Overlaps(dates) }), nil
}

func (r *bookingRepository) FindByDate(_ context.Context, day time.Time) ([]*booking.Booking, error) {
	return r.filter(func(b *booking.Booking) bool { return b.Dates().Contains(day) }), nil
}

func (r *bookingRepository) FindByGuestDetails(_ context.Context, guestDetails string) ([]*booking.Booking, error) {
	return r.filter(func(b *booking.Booking) bool { return b.GuestDetails().String() == guestDetails }), nil
}

func (r *bookingRepository) indexOf(id uuid.UUID) int {
	for i, b := range r.tx.state.bookings {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

func (r *bookingRepository) filter(keep func(*booking.Booking) bool) []*booking.Booking {
	out := make([]*booking.Booking, 0)
	for _, b := range r.tx.state.bookings {
		if keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}
