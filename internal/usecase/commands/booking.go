package commands

import (
	"context"
	"log/slog"

	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/infra"
	"booking-manager/internal/pkg/clock"
	"booking-manager/internal/pkg/config"
	"booking-manager/internal/pkg/errs"
	"booking-manager/internal/usecase/queries"
	"booking-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrDatesUnavailable = errs.New("requested dates are not available")
)

type CreateBookingInput struct {
	Range        daterange.DateRange
	GuestDetails string
}

type UpdateBookingInput struct {
	Range        daterange.DateRange
	GuestDetails string
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*queries.BookingView, error)
	Reschedule(ctx context.Context, id uuid.UUID, newRange daterange.DateRange) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	updatePolicy string
	logger       *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		clock:        clk,
		updatePolicy: cfg.Booking.UpdatePolicy,
		logger:       logger,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := booking.NewBooking(uuid.Nil, in.Range, in.GuestDetails, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = ensureAvailable(ctx, tx, in.Range, nil); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return translateWriteErr(derr)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking created", "booking_id", view.ID, "dates", in.Range.String())
	return view, nil
}

// Update replaces dates and guest details. Under the strict policy the new
// dates must be free of every other booking and every block.
func (uc *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := findBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if uc.updatePolicy != config.UpdatePolicyOverwrite {
			if derr = ensureAvailable(ctx, tx, in.Range, &id); derr != nil {
				return derr
			}
		}
		if derr = b.Revise(in.Range, in.GuestDetails, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return translateWriteErr(derr)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking updated", "booking_id", id, "dates", in.Range.String(), "policy", uc.updatePolicy)
	return view, nil
}

func (uc *bookingCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, newRange daterange.DateRange) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := findBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = ensureAvailable(ctx, tx, newRange, &id); derr != nil {
			return derr
		}
		if derr = b.Reschedule(newRange, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return translateWriteErr(derr)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking rescheduled", "booking_id", id, "dates", newRange.String())
	return view, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := uc.remove(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("booking cancelled", "booking_id", id)
	return nil
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.remove(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("booking deleted", "booking_id", id)
	return nil
}

// Cancelled bookings are not retained, so cancel and delete share one path.
func (uc *bookingCommandsImpl) remove(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
			}
			return err
		}
		return nil
	})
}

func findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func ensureAvailable(ctx context.Context, tx shared.Tx, r daterange.DateRange, exclude *uuid.UUID) error {
	verdict, err := shared.EvaluateAvailability(ctx, tx, r, exclude)
	if err != nil {
		return err
	}
	if !verdict.Available() {
		return errs.Mark(errs.Wrapf(ErrDatesUnavailable, "%s overlaps %d existing entries", r, len(verdict.Conflicts)), errs.ErrConflict)
	}
	return nil
}

// The postgres exclusion constraint can still reject a write the check let
// through; surface it the same way.
func translateWriteErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(ErrDatesUnavailable, errs.ErrConflict)
	}
	return err
}
