package response

import (
	"booking-manager/internal/usecase/queries"
)

type ConflictResponse struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

type AvailabilityResponse struct {
	StartDate Date                `json:"startDate"`
	EndDate   Date                `json:"endDate"`
	Available bool                `json:"available"`
	Conflicts []*ConflictResponse `json:"conflicts"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	// an empty list, never null
	if res.Conflicts == nil {
		res.Conflicts = []*ConflictResponse{}
	}
	return &res, nil
}
