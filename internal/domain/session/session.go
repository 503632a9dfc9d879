package session

import (
	"time"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/stay"

	"github.com/google/uuid"
)

// Session is the per-visitor booking state behind the session cookie.
// Offers are replaced by every search; the cart outlives searches.
type Session struct {
	ID        uuid.UUID
	Locale    string
	Stay      *stay.Stay
	Guests    cart.GuestCount
	Offers    []cart.RoomOffer
	Cart      *cart.Cart
	UpdatedAt time.Time
}

func New(locale string, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Locale:    locale,
		Guests:    cart.GuestCount{Adults: 1},
		Cart:      cart.New(),
		UpdatedAt: now,
	}
}

func (s *Session) ApplySearch(st stay.Stay, guests cart.GuestCount, offers []cart.RoomOffer, now time.Time) {
	s.Stay = &st
	s.Guests = guests
	s.Offers = offers
	s.UpdatedAt = now
}

func (s *Session) Offer(roomTypeID string) (cart.RoomOffer, bool) {
	for _, o := range s.Offers {
		if o.RoomTypeID == roomTypeID {
			return o, true
		}
	}
	return cart.RoomOffer{}, false
}

// MaxAvailable is the quantity cap for a cart line. When the latest search
// no longer lists the room type the line is frozen at its current quantity.
func (s *Session) MaxAvailable(roomTypeID string) int {
	if o, ok := s.Offer(roomTypeID); ok {
		return o.RoomsAvailable
	}
	if l, ok := s.Cart.Line(roomTypeID); ok {
		return l.Quantity()
	}
	return 0
}

func (s *Session) Nights() int {
	if s.Stay == nil {
		return 0
	}
	return s.Stay.Nights()
}
