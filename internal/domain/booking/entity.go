package booking

import (
	"time"

	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestDetails   = errs.New("guest details cannot be empty")
	ErrGuestDetailsTooLong = errs.New("guest details are too long (max 200 characters)")
	ErrMissingRange        = errs.New("booking requires a date range")
)

// Booking occupies an inclusive date range of the shared resource.
type Booking struct {
	id           uuid.UUID
	dates        daterange.DateRange
	guestDetails GuestDetails
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(id uuid.UUID, dates daterange.DateRange, guestDetails string, now time.Time) (*Booking, error) {
	if dates.IsZero() {
		return nil, errs.Mark(ErrMissingRange, errs.ErrInvalidRange)
	}
	guest, err := NewGuestDetails(guestDetails)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Booking{
		id:           id,
		dates:        dates,
		guestDetails: guest,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructBooking(id uuid.UUID, dates daterange.DateRange, guestDetails GuestDetails, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:           id,
		dates:        dates,
		guestDetails: guestDetails,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Reschedule moves the booking to new dates, keeping its identity and guest.
func (b *Booking) Reschedule(dates daterange.DateRange, now time.Time) error {
	if dates.IsZero() {
		return errs.Mark(ErrMissingRange, errs.ErrInvalidRange)
	}
	b.dates = dates
	b.updatedAt = now
	return nil
}

// Revise replaces both dates and guest details in place.
func (b *Booking) Revise(dates daterange.DateRange, guestDetails string, now time.Time) error {
	guest, err := NewGuestDetails(guestDetails)
	if err != nil {
		return err
	}
	if err := b.Reschedule(dates, now); err != nil {
		return err
	}
	b.guestDetails = guest
	return nil
}

func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Dates() daterange.DateRange { return b.dates }
func (b *Booking) GuestDetails() GuestDetails { return b.guestDetails }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}
