package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGuestCount    = errors.New("at least one adult is required and children cannot be negative")
	ErrInsufficientCapacity = errors.New("selected rooms cannot host all guests")
	ErrTooManyRooms         = errors.New("more rooms selected than guests to occupy them")
)

// RoomOffer is one room type returned by an availability search. Offers are
// replaced on every search; the cart copies what it needs at add time.
type RoomOffer struct {
	RoomTypeID     string
	Name           string
	RatePerNight   decimal.Decimal
	Currency       string
	MaxGuests      int
	RoomsAvailable int
}

// GuestCount is the party size for the session. It is independent of the cart.
type GuestCount struct {
	Adults   int
	Children int
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < 1 || children < 0 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{Adults: adults, Children: children}, nil
}

func (g GuestCount) Total() int {
	return g.Adults + g.Children
}

// RoomAssignment is the occupancy of one physical room instance. Each
// assignment becomes one reservation entry with quantity 1.
type RoomAssignment struct {
	RoomTypeID string
	Adults     int
	Children   int
}

func (a RoomAssignment) Occupants() int {
	return a.Adults + a.Children
}

// CapacityError carries how many guests the current selection is short by.
type CapacityError struct {
	Guests    int
	Capacity  int
	Shortfall int
}

func (e *CapacityError) Error() string {
	return ErrInsufficientCapacity.Error()
}

func (e *CapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}
