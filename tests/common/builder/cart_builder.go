//go:build unit || e2e

package builder

import (
	"resort-booking/internal/domain/cart"

	"github.com/shopspring/decimal"
)

type CartBuilder struct {
	Offers []cart.RoomOffer
	Adds   []string
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

func NewOffer(id string, maxGuests, available int, rate int64) cart.RoomOffer {
	return cart.RoomOffer{
		RoomTypeID:     id,
		Name:           "Room " + id,
		RatePerNight:   decimal.NewFromInt(rate),
		Currency:       "MNT",
		MaxGuests:      maxGuests,
		RoomsAvailable: available,
	}
}

func (b *CartBuilder) WithOffer(offer cart.RoomOffer) *CartBuilder {
	b.Offers = append(b.Offers, offer)
	return b
}

// WithLine registers the offer and adds it quantity times.
func (b *CartBuilder) WithLine(offer cart.RoomOffer, quantity int) *CartBuilder {
	b.Offers = append(b.Offers, offer)
	for range quantity {
		b.Adds = append(b.Adds, offer.RoomTypeID)
	}
	return b
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) Offer(id string) (cart.RoomOffer, bool) {
	for _, o := range b.Offers {
		if o.RoomTypeID == id {
			return o, true
		}
	}
	return cart.RoomOffer{}, false
}

func (b *CartBuilder) Build() *cart.Cart {
	c := cart.New()
	for _, id := range b.Adds {
		if o, ok := b.Offer(id); ok {
			c.AddRoom(o)
		}
	}
	return c
}
