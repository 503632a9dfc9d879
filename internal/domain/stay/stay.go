package stay

import (
	"errors"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrCheckInInPast           = errors.New("check-in cannot be in the past")
	ErrStayTooLong             = errors.New("stay exceeds the maximum number of nights")
	ErrInvalidDate             = errors.New("invalid date, expected YYYY-MM-DD")
)

// Stay is a check-in/check-out pair normalised to midnight in the resort's
// location.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

type Policy struct {
	Today     time.Time
	MaxNights int
}

func New(checkIn, checkOut time.Time, p Policy) (Stay, error) {
	s := Stay{checkIn: truncateDay(checkIn), checkOut: truncateDay(checkOut)}
	if !s.checkOut.After(s.checkIn) {
		return Stay{}, ErrCheckOutNotAfterCheckIn
	}
	if !p.Today.IsZero() && s.checkIn.Before(truncateDay(p.Today)) {
		return Stay{}, ErrCheckInInPast
	}
	if p.MaxNights > 0 && s.Nights() > p.MaxNights {
		return Stay{}, ErrStayTooLong
	}
	return s, nil
}

// Parse reads YYYY-MM-DD dates in loc.
func Parse(checkIn, checkOut string, loc *time.Location, p Policy) (Stay, error) {
	in, err := time.ParseInLocation(DateLayout, checkIn, loc)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}
	out, err := time.ParseInLocation(DateLayout, checkOut, loc)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}
	return New(in, out, p)
}

// Reconstruct skips validation; used for stays loaded from storage.
func Reconstruct(checkIn, checkOut time.Time) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

// Nights is the ceiling of the day difference, never less than 1. A DST
// shift can make the difference a fractional day.
func (s Stay) Nights() int {
	days := s.checkOut.Sub(s.checkIn).Hours() / 24
	n := int(math.Ceil(days))
	if n < 1 {
		return 1
	}
	return n
}

func (s Stay) CheckInDate() string  { return s.checkIn.Format(DateLayout) }
func (s Stay) CheckOutDate() string { return s.checkOut.Format(DateLayout) }

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
