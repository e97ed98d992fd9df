package response

import (
	"booking-manager/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string `json:"id"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
	GuestDetails string `json:"guestDetails"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

// MessageResponse is returned by operations that have no resource to show.
type MessageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
