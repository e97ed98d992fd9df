package request

import (
	"time"

	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
)

// BookingFilter carries the optional GET /bookings query parameters.
// At most one of Date, GuestDetails or Start/End may be given.
type BookingFilter struct {
	Date         string `form:"date"`
	GuestDetails string `form:"guestDetails"`
	Start        string `form:"start"`
	End          string `form:"end"`
}

type RangeFilter struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

type AvailabilityRequest struct {
	Start            string `form:"start" binding:"required"`
	End              string `form:"end" binding:"required"`
	ExcludeBookingID string `form:"excludeBookingId" binding:"omitempty,uuid"`
}

func (f *BookingFilter) HasRange() bool {
	return f.Start != "" || f.End != ""
}

func (f *BookingFilter) Count() int {
	n := 0
	if f.Date != "" {
		n++
	}
	if f.GuestDetails != "" {
		n++
	}
	if f.HasRange() {
		n++
	}
	return n
}

func (f *BookingFilter) Day() (time.Time, error) {
	return daterange.ParseDate(f.Date)
}

func (f *BookingFilter) Range() (daterange.DateRange, error) {
	return daterange.Parse(f.Start, f.End)
}

func (f *RangeFilter) IsEmpty() bool {
	return f.Start == "" && f.End == ""
}

func (f *RangeFilter) Range() (daterange.DateRange, error) {
	return daterange.Parse(f.Start, f.End)
}

func (r *AvailabilityRequest) Range() (daterange.DateRange, error) {
	return daterange.Parse(r.Start, r.End)
}

// Exclude returns nil when no booking id was supplied.
func (r *AvailabilityRequest) Exclude() *uuid.UUID {
	if r.ExcludeBookingID == "" {
		return nil
	}
	id, err := uuid.Parse(r.ExcludeBookingID)
	if err != nil {
		return nil
	}
	return &id
}
