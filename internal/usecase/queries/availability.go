package queries

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SearchInput struct {
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
	Locale   i18n.Locale
}

type AvailabilityQueries interface {
	Search(ctx context.Context, sessionID uuid.UUID, in SearchInput) (*SearchResult, error)
}

type availabilityQueriesImpl struct {
	provider shared.AvailabilityProvider
	sessions shared.SessionStore
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewAvailabilityQueries(
	provider shared.AvailabilityProvider,
	sessions shared.SessionStore,
	clk clock.Clock,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		provider: provider,
		sessions: sessions,
		clock:    clk,
		cfg:      cfg.Booking,
	}
}

// Search replaces the session's offers with a fresh provider result. Cart
// lines survive; their caps follow the new offers.
func (q *availabilityQueriesImpl) Search(ctx context.Context, sessionID uuid.UUID, in SearchInput) (*SearchResult, error) {
	loc := q.cfg.Location()
	st, err := stay.Parse(in.CheckIn, in.CheckOut, loc, stay.Policy{
		Today:     clock.Today(q.clock, loc),
		MaxNights: q.cfg.MaxNights,
	})
	if err != nil {
		return nil, errs.WithDetail(errs.Mark(err, errs.ErrInvalidStay), err.Error())
	}

	guests, err := cart.NewGuestCount(in.Adults, in.Children)
	if err != nil {
		return nil, errs.WithDetail(errs.Mark(err, errs.ErrInvalidGuestCount), err.Error())
	}

	offers, err := q.provider.FetchAvailability(ctx, st, q.cfg.Currency)
	if err != nil {
		slog.WarnContext(ctx, "availability fetch failed", "check_in", st.CheckInDate(), "error", err.Error())
		return nil, errs.Mark(err, errs.ErrProviderUnavailable)
	}

	s, err := shared.LoadSession(ctx, q.sessions, sessionID, in.Locale.String(), q.clock.Now())
	if err != nil {
		return nil, err
	}
	s.ApplySearch(st, guests, offers, q.clock.Now())
	if err := q.sessions.Save(ctx, s); err != nil {
		return nil, err
	}

	return &SearchResult{
		CheckIn:  st.CheckInDate(),
		CheckOut: st.CheckOutDate(),
		Nights:   st.Nights(),
		Adults:   guests.Adults,
		Children: guests.Children,
		Offers:   NewOfferViews(s),
		Cart:     NewCartView(s, q.cfg.Currency, in.Locale),
	}, nil
}
