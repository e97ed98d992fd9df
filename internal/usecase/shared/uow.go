package shared

import (
	"context"
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction; writers of the shared resource are serialized
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot across bookings and blocks
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Blocks() BlockRepository
}

// Listing methods return records in insertion order.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context) ([]*booking.Booking, error)
	FindOverlapping(ctx context.Context, r daterange.DateRange) ([]*booking.Booking, error)
	FindByDate(ctx context.Context, day time.Time) ([]*booking.Booking, error)
	FindByGuestDetails(ctx context.Context, guestDetails string) ([]*booking.Booking, error)
}

type BlockRepository interface {
	Create(ctx context.Context, b *block.Block) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error)
	List(ctx context.Context) ([]*block.Block, error)
	FindOverlapping(ctx context.Context, r daterange.DateRange) ([]*block.Block, error)
	FindByStartDate(ctx context.Context, day time.Time) ([]*block.Block, error)
	FindByEndDate(ctx context.Context, day time.Time) ([]*block.Block, error)
}
