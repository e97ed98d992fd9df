package queries

import (
	"time"

	"booking-manager/internal/domain/availability"
	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID           uuid.UUID `json:"id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	GuestDetails string    `json:"guest_details"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BlockView represents read-optimized block data
type BlockView struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type ConflictView struct {
	Kind      string    `json:"kind"`
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type AvailabilityView struct {
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Available bool            `json:"available"`
	Conflicts []*ConflictView `json:"conflicts"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:           b.ID(),
		StartDate:    b.Dates().Start(),
		EndDate:      b.Dates().End(),
		GuestDetails: b.GuestDetails().String(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

func NewBlockView(b *block.Block) *BlockView {
	return &BlockView{
		ID:        b.ID(),
		StartDate: b.Dates().Start(),
		EndDate:   b.Dates().End(),
		Reason:    b.Reason(),
		CreatedAt: b.CreatedAt(),
	}
}

func NewAvailabilityView(v availability.Verdict) *AvailabilityView {
	out := &AvailabilityView{
		StartDate: v.Candidate.Start(),
		EndDate:   v.Candidate.End(),
		Available: v.Available(),
		Conflicts: make([]*ConflictView, 0, len(v.Conflicts)),
	}
	for _, c := range v.Conflicts {
		out.Conflicts = append(out.Conflicts, &ConflictView{
			Kind:      string(c.Kind),
			ID:        c.ID,
			StartDate: c.Dates.Start(),
			EndDate:   c.Dates.End(),
		})
	}
	return out
}

func bookingViews(bookings []*booking.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingView(b))
	}
	return out
}

func blockViews(blocks []*block.Block) []*BlockView {
	out := make([]*BlockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, NewBlockView(b))
	}
	return out
}
