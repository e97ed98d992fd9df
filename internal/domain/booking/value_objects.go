package booking

import "strings"

const MaxGuestDetailsLength = 200

type GuestDetails struct {
	text string
}

func NewGuestDetails(s string) (GuestDetails, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return GuestDetails{}, invalid(ErrEmptyGuestDetails)
	}
	if len([]rune(t)) > MaxGuestDetailsLength {
		return GuestDetails{}, invalid(ErrGuestDetailsTooLong)
	}
	return GuestDetails{text: t}, nil
}

func (g GuestDetails) String() string { return g.text }
