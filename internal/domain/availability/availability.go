// Package availability decides whether a date range is free for a booking.
package availability

import (
	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
)

type OccupantKind string

const (
	KindBooking OccupantKind = "booking"
	KindBlock   OccupantKind = "block"
)

// Occupant is anything holding a date range on the resource.
type Occupant struct {
	Kind  OccupantKind
	ID    uuid.UUID
	Dates daterange.DateRange
}

type Verdict struct {
	Candidate daterange.DateRange
	Conflicts []Occupant
}

func (v Verdict) Available() bool {
	return len(v.Conflicts) == 0
}

// Evaluate scans every booking and block. The booking named by exclude is
// skipped so a booking never conflicts with its own previous dates.
func Evaluate(candidate daterange.DateRange, bookings, blocks []Occupant, exclude *uuid.UUID) Verdict {
	v := Verdict{Candidate: candidate}
	for _, b := range bookings {
		if exclude != nil && b.ID == *exclude {
			continue
		}
		if b.Dates.Overlaps(candidate) {
			v.Conflicts = append(v.Conflicts, b)
		}
	}
	for _, k := range blocks {
		if k.Dates.Overlaps(candidate) {
			v.Conflicts = append(v.Conflicts, k)
		}
	}
	return v
}
