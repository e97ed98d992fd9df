package gormstore

import (
	"time"

	"booking-manager/internal/domain/block"
	"booking-manager/internal/domain/booking"
	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
)

// Seq preserves insertion order; ID is the public identifier.
type bookingRow struct {
	Seq          int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID           string    `gorm:"column:id;size:36;uniqueIndex;not null"`
	StartDate    time.Time `gorm:"column:start_date;index;not null"`
	EndDate      time.Time `gorm:"column:end_date;index;not null"`
	GuestDetails string    `gorm:"column:guest_details;index;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (bookingRow) TableName() string { return "bookings" }

type blockRow struct {
	Seq       int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID        string    `gorm:"column:id;size:36;uniqueIndex;not null"`
	StartDate time.Time `gorm:"column:start_date;index;not null"`
	EndDate   time.Time `gorm:"column:end_date;index;not null"`
	Reason    string    `gorm:"column:reason;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime:false"`
}

func (blockRow) TableName() string { return "blocks" }

func toBookingRow(b *booking.Booking) bookingRow {
	return bookingRow{
		ID:           b.ID().String(),
		StartDate:    b.Dates().Start(),
		EndDate:      b.Dates().End(),
		GuestDetails: b.GuestDetails().String(),
		CreatedAt:    b.CreatedAt().UTC(),
		UpdatedAt:    b.UpdatedAt().UTC(),
	}
}

func toDomainBooking(m bookingRow) (*booking.Booking, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	dates, err := daterange.New(m.StartDate, m.EndDate)
	if err != nil {
		return nil, err
	}
	guest, err := booking.NewGuestDetails(m.GuestDetails)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(id, dates, guest, m.CreatedAt.UTC(), m.UpdatedAt.UTC()), nil
}

func toBlockRow(b *block.Block) blockRow {
	return blockRow{
		ID:        b.ID().String(),
		StartDate: b.Dates().Start(),
		EndDate:   b.Dates().End(),
		Reason:    b.Reason(),
		CreatedAt: b.CreatedAt().UTC(),
	}
}

func toDomainBlock(m blockRow) (*block.Block, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	dates, err := daterange.New(m.StartDate, m.EndDate)
	if err != nil {
		return nil, err
	}
	return block.ReconstructBlock(id, dates, m.Reason, m.CreatedAt.UTC()), nil
}
