package request

import (
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/usecase/commands"
)

type CreateBookingRequest struct {
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	GuestDetails string `json:"guestDetails" binding:"required,max=200"`
}

type UpdateBookingRequest struct {
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	GuestDetails string `json:"guestDetails" binding:"required,max=200"`
}

type RescheduleBookingRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	dates, err := daterange.Parse(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{Range: dates, GuestDetails: r.GuestDetails}, nil
}

func (r *UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	dates, err := daterange.Parse(r.StartDate, r.EndDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	return commands.UpdateBookingInput{Range: dates, GuestDetails: r.GuestDetails}, nil
}

func (r *RescheduleBookingRequest) ToRange() (daterange.DateRange, error) {
	return daterange.Parse(r.StartDate, r.EndDate)
}
