package request

import (
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/usecase/commands"
)

type CreateBlockRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required,max=500"`
}

func (r *CreateBlockRequest) ToInput() (commands.CreateBlockInput, error) {
	dates, err := daterange.Parse(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreateBlockInput{}, err
	}
	return commands.CreateBlockInput{Range: dates, Reason: r.Reason}, nil
}
