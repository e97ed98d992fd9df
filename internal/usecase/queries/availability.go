package queries

import (
	"context"

	"booking-manager/internal/domain/availability"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// Check reports whether r is free, ignoring the booking named by exclude.
	Check(ctx context.Context, r daterange.DateRange, exclude *uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, r daterange.DateRange, exclude *uuid.UUID) (*AvailabilityView, error) {
	var verdict availability.Verdict
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := shared.EvaluateAvailability(ctx, tx, r, exclude)
		if err != nil {
			return err
		}
		verdict = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewAvailabilityView(verdict), nil
}
