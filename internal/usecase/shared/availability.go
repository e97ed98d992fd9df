package shared

import (
	"context"

	"booking-manager/internal/domain/availability"
	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
)

// EvaluateAvailability reads both stores through tx, so the verdict holds for
// as long as the surrounding unit of work does.
func EvaluateAvailability(ctx context.Context, tx Tx, r daterange.DateRange, exclude *uuid.UUID) (availability.Verdict, error) {
	bookings, err := tx.Bookings().FindOverlapping(ctx, r)
	if err != nil {
		return availability.Verdict{}, err
	}
	blocks, err := tx.Blocks().FindOverlapping(ctx, r)
	if err != nil {
		return availability.Verdict{}, err
	}
	return availability.Evaluate(r, BookingOccupants(bookings), BlockOccupants(blocks), exclude), nil
}

func BookingOccupants(bookings []*booking.Booking) []availability.Occupant {
	out := make([]availability.Occupant, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, availability.Occupant{Kind: availability.KindBooking, ID: b.ID(), Dates: b.Dates()})
	}
	return out
}

func BlockOccupants(blocks []*block.Block) []availability.Occupant {
	out := make([]availability.Occupant, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, availability.Occupant{Kind: availability.KindBlock, ID: b.ID(), Dates: b.Dates()})
	}
	return out
}
