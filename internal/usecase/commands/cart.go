package commands

import (
	"context"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/queries"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddRoom(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, roomTypeID string) (*queries.CartView, error)
	RemoveRoom(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, roomTypeID string) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, roomTypeID string, delta int) (*queries.CartView, error)
	SetGuests(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, adults, children int) (*queries.CartView, error)
	Clear(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale) (*queries.CartView, error)
	Summary(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	sessions shared.SessionStore
	clock    clock.Clock
	currency string
}

func NewCartCommands(sessions shared.SessionStore, clk clock.Clock, cfg config.Config) CartCommands {
	return &cartCommandsImpl{
		sessions: sessions,
		clock:    clk,
		currency: cfg.Booking.Currency,
	}
}

func (c *cartCommandsImpl) AddRoom(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, roomTypeID string) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, locale, func(s *session.Session) error {
		offer, ok := s.Offer(roomTypeID)
		if !ok {
			return errs.WithDetail(errs.ErrOfferNotFound, roomTypeID)
		}
		s.Cart.AddRoom(offer)
		return nil
	})
}

func (c *cartCommandsImpl) RemoveRoom(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, roomTypeID string) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, locale, func(s *session.Session) error {
		s.Cart.RemoveRoom(roomTypeID)
		return nil
	})
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, roomTypeID string, delta int) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, locale, func(s *session.Session) error {
		s.Cart.UpdateQuantity(roomTypeID, delta, s.MaxAvailable(roomTypeID))
		return nil
	})
}

// SetGuests changes the party size without a new search. The cart is kept
// even when it no longer fits; the summary reports the shortfall.
func (c *cartCommandsImpl) SetGuests(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, adults, children int) (*queries.CartView, error) {
	guests, err := cart.NewGuestCount(adults, children)
	if err != nil {
		return nil, errs.WithDetail(errs.Mark(err, errs.ErrInvalidGuestCount), err.Error())
	}
	return c.mutate(ctx, sessionID, locale, func(s *session.Session) error {
		s.Guests = guests
		return nil
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, locale, func(s *session.Session) error {
		s.Cart.Clear()
		return nil
	})
}

func (c *cartCommandsImpl) Summary(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale) (*queries.CartView, error) {
	s, err := shared.LoadSession(ctx, c.sessions, sessionID, locale.String(), c.clock.Now())
	if err != nil {
		return nil, err
	}
	return queries.NewCartView(s, c.currency, locale), nil
}

func (c *cartCommandsImpl) mutate(ctx context.Context, sessionID uuid.UUID, locale i18n.Locale, fn func(s *session.Session) error) (*queries.CartView, error) {
	s, err := shared.LoadSession(ctx, c.sessions, sessionID, locale.String(), c.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = c.clock.Now()
	if err := c.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return queries.NewCartView(s, c.currency, locale), nil
}
