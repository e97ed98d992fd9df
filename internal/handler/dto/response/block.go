package response

import (
	"booking-manager/internal/usecase/queries"
)

type BlockResponse struct {
	ID        string `json:"id"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

func FromBlockView(v *queries.BlockView) (*BlockResponse, error) {
	var res BlockResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBlockViews(views []*queries.BlockView) ([]*BlockResponse, error) {
	res := make([]*BlockResponse, 0, len(views))
	for _, v := range views {
		item, err := FromBlockView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}
