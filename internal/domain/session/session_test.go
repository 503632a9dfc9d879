//go:build unit

package session_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/domain/stay"
	"resort-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ApplySearchKeepsCart(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	s := session.New("mn", now)
	a := builder.NewOffer("A", 2, 3, 100)
	s.ApplySearch(stay.Reconstruct(now, now.AddDate(0, 0, 2)), cart.GuestCount{Adults: 2}, []cart.RoomOffer{a}, now)
	s.Cart.AddRoom(a)
	s.Cart.AddRoom(a)

	s.ApplySearch(stay.Reconstruct(now, now.AddDate(0, 0, 4)), cart.GuestCount{Adults: 3}, []cart.RoomOffer{builder.NewOffer("B", 2, 1, 100)}, now)

	assert.Equal(t, 2, s.Cart.RoomCount())
	assert.Equal(t, 4, s.Nights())
	_, ok := s.Offer("A")
	assert.False(t, ok)
	// A vanished from the search: frozen at current quantity
	assert.Equal(t, 2, s.MaxAvailable("A"))
	assert.Equal(t, 1, s.MaxAvailable("B"))
	assert.Equal(t, 0, s.MaxAvailable("C"))
}

func TestNew(t *testing.T) {
	s := session.New("en", time.Now())
	require.NotNil(t, s.Cart)
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, 1, s.Guests.Adults)
	assert.Zero(t, s.Nights())
}
