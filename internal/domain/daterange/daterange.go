package daterange

import (
	"strings"
	"time"

	"booking-manager/internal/pkg/errs"
)

// ISO-8601 calendar date layout used on the wire and in logs.
const Layout = "2006-01-02"

var (
	ErrStartAfterEnd = errs.New("start date must not be after end date")
	ErrMissingDate   = errs.New("start and end dates are required")
	ErrMalformedDate = errs.New("date must be formatted as YYYY-MM-DD")
)

// DateRange is a closed interval of calendar days. Both ends are inclusive.
type DateRange struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, invalid(ErrMissingDate)
	}
	s, e := Day(start), Day(end)
	if s.After(e) {
		return DateRange{}, invalid(ErrStartAfterEnd)
	}
	return DateRange{start: s, end: e}, nil
}

// Parse builds a range from two YYYY-MM-DD strings.
func Parse(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return New(s, e)
}

func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, invalid(ErrMissingDate)
	}
	t, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, invalid(errs.Mark(errs.Wrap(err, "parse date "+value), ErrMalformedDate))
	}
	return t, nil
}

func invalid(err error) error {
	return errs.Mark(err, errs.ErrInvalidRange)
}

// Day truncates t to midnight UTC of its own calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Single is the one-day range [day, day].
func Single(day time.Time) DateRange {
	d := Day(day)
	return DateRange{start: d, end: d}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }
func (r DateRange) IsZero() bool     { return r.start.IsZero() && r.end.IsZero() }

// Overlaps uses the closed-interval rule: touching endpoints overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

func (r DateRange) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.start) && !d.After(r.end)
}

// Days counts calendar days, so a single-day range has length 1.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DateRange) String() string {
	return r.start.Format(Layout) + "/" + r.end.Format(Layout)
}
