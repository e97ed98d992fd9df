//go:build unit || e2e

package builder

import (
	"time"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	reqdto "booking-manager/internal/handler/dto/request"
	"booking-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	StartDate    string
	EndDate      string
	GuestDetails string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		StartDate:    "2024-01-05",
		EndDate:      "2024-01-10",
		GuestDetails: "Ana Souza, 2 adults",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Range() (daterange.DateRange, error) {
	return daterange.Parse(b.StartDate, b.EndDate)
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	r, err := b.Range()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ID, r, b.GuestDetails, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		GuestDetails: b.GuestDetails,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		GuestDetails: b.GuestDetails,
	}
}

func (b *BookingBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleBookingRequest {
	return reqdto.RescheduleBookingRequest{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	start, _ := daterange.ParseDate(b.StartDate)
	end, _ := daterange.ParseDate(b.EndDate)
	return &queries.BookingView{
		ID:           id,
		StartDate:    start,
		EndDate:      end,
		GuestDetails: b.GuestDetails,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithGuestDetails(guestDetails string) *BookingBuilder {
	b.GuestDetails = guestDetails
	return b
}
