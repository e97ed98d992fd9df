//go:build unit || e2e

package builder

import (
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/daterange"
	reqdto "booking-manager/internal/handler/dto/request"
	"booking-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockBuilder struct {
	ID        uuid.UUID
	StartDate string
	EndDate   string
	Reason    string
	CreatedAt time.Time
}

func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{
		StartDate: "2024-02-01",
		EndDate:   "2024-02-03",
		Reason:    "Roof repair",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BlockBuilder) With(mutate func(*BlockBuilder)) *BlockBuilder {
	mutate(b)
	return b
}

func (b *BlockBuilder) BuildDomain() (*block.Block, error) {
	r, err := daterange.Parse(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return block.NewBlock(b.ID, r, b.Reason, b.CreatedAt)
}

func (b *BlockBuilder) BuildCreateRequestDTO() reqdto.CreateBlockRequest {
	return reqdto.CreateBlockRequest{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Reason:    b.Reason,
	}
}

func (b *BlockBuilder) BuildView() *queries.BlockView {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	start, _ := daterange.ParseDate(b.StartDate)
	end, _ := daterange.ParseDate(b.EndDate)
	return &queries.BlockView{
		ID:        id,
		StartDate: start,
		EndDate:   end,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BlockBuilder) WithDates(start, end string) *BlockBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BlockBuilder) WithReason(reason string) *BlockBuilder {
	b.Reason = reason
	return b
}
