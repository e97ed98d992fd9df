package block

import (
	"strings"
	"time"

	"booking-manager/internal/domain/daterange"
	"booking-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 500

var (
	ErrEmptyReason   = errs.New("block reason cannot be empty")
	ErrReasonTooLong = errs.New("block reason is too long (max 500 characters)")
	ErrMissingRange  = errs.New("block requires a date range")
)

// Block is an administrative unavailability window. Blocks may overlap each
// other; only bookings are kept apart from them.
type Block struct {
	id        uuid.UUID
	dates     daterange.DateRange
	reason    string
	createdAt time.Time
}

func NewBlock(id uuid.UUID, dates daterange.DateRange, reason string, now time.Time) (*Block, error) {
	if dates.IsZero() {
		return nil, errs.Mark(ErrMissingRange, errs.ErrInvalidRange)
	}
	r, err := validateReason(reason)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Block{
		id:        id,
		dates:     dates,
		reason:    r,
		createdAt: now,
	}, nil
}

func ReconstructBlock(id uuid.UUID, dates daterange.DateRange, reason string, createdAt time.Time) *Block {
	return &Block{
		id:        id,
		dates:     dates,
		reason:    reason,
		createdAt: createdAt,
	}
}

func validateReason(reason string) (string, error) {
	r := strings.TrimSpace(reason)
	if r == "" {
		return "", errs.Mark(ErrEmptyReason, errs.ErrValidation)
	}
	if len([]rune(r)) > MaxReasonLength {
		return "", errs.Mark(ErrReasonTooLong, errs.ErrValidation)
	}
	return r, nil
}

func (b *Block) ID() uuid.UUID              { return b.id }
func (b *Block) Dates() daterange.DateRange { return b.dates }
func (b *Block) Reason() string             { return b.reason }
func (b *Block) CreatedAt() time.Time       { return b.createdAt }
