package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type sessionJSON struct {
	ID        uuid.UUID   `json:"id"`
	Locale    string      `json:"locale"`
	CheckIn   string      `json:"check_in,omitempty"`
	CheckOut  string      `json:"check_out,omitempty"`
	Adults    int         `json:"adults"`
	Children  int         `json:"children"`
	Offers    []offerJSON `json:"offers,omitempty"`
	Cart      []lineJSON  `json:"cart,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type offerJSON struct {
	RoomTypeID     string          `json:"room_type_id"`
	Name           string          `json:"name"`
	RatePerNight   decimal.Decimal `json:"rate_per_night"`
	Currency       string          `json:"currency"`
	MaxGuests      int             `json:"max_guests"`
	RoomsAvailable int             `json:"rooms_available"`
}

type lineJSON struct {
	RoomTypeID   string          `json:"room_type_id"`
	Name         string          `json:"name"`
	RatePerNight decimal.Decimal `json:"rate_per_night"`
	MaxGuests    int             `json:"max_guests"`
	Quantity     int             `json:"quantity"`
}

// SessionStore keeps sessions as JSON. Every load or save pushes the expiry
// out by ttl.
type SessionStore struct {
	client *Client
	ttl    time.Duration
	loc    *time.Location
}

func NewSessionStore(client *Client, ttl time.Duration, loc *time.Location) *SessionStore {
	if loc == nil {
		loc = time.UTC
	}
	return &SessionStore{client: client, ttl: ttl, loc: loc}
}

func (s *SessionStore) Load(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	key := s.client.SessionKey(id.String())
	raw, err := s.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "load session")
	}
	var doc sessionJSON
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		// An unreadable session is treated as gone so the visitor starts over.
		return nil, errs.WithDetail(errs.ErrSessionNotFound, err.Error())
	}
	if err := s.client.Expire(ctx, key, s.ttl); err != nil {
		return nil, errs.Wrap(err, "extend session")
	}
	return s.decode(doc), nil
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	body, err := json.Marshal(encodeSession(sess))
	if err != nil {
		return errs.Wrap(err, "encode session")
	}
	if err := s.client.Set(ctx, s.client.SessionKey(sess.ID.String()), body, s.ttl); err != nil {
		return errs.Wrap(err, "save session")
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.client.SessionKey(id.String())); err != nil {
		return errs.Wrap(err, "delete session")
	}
	return nil
}

func encodeSession(sess *session.Session) sessionJSON {
	doc := sessionJSON{
		ID:        sess.ID,
		Locale:    sess.Locale,
		Adults:    sess.Guests.Adults,
		Children:  sess.Guests.Children,
		UpdatedAt: sess.UpdatedAt,
	}
	if sess.Stay != nil {
		doc.CheckIn = sess.Stay.CheckInDate()
		doc.CheckOut = sess.Stay.CheckOutDate()
	}
	for _, o := range sess.Offers {
		doc.Offers = append(doc.Offers, offerJSON(o))
	}
	if sess.Cart != nil {
		for _, l := range sess.Cart.Lines() {
			doc.Cart = append(doc.Cart, lineJSON{
				RoomTypeID:   l.RoomTypeID(),
				Name:         l.Name(),
				RatePerNight: l.RatePerNight(),
				MaxGuests:    l.MaxGuests(),
				Quantity:     l.Quantity(),
			})
		}
	}
	return doc
}

func (s *SessionStore) decode(doc sessionJSON) *session.Session {
	sess := &session.Session{
		ID:        doc.ID,
		Locale:    doc.Locale,
		Guests:    cart.GuestCount{Adults: doc.Adults, Children: doc.Children},
		UpdatedAt: doc.UpdatedAt,
	}
	if doc.CheckIn != "" && doc.CheckOut != "" {
		in, errIn := time.ParseInLocation(stay.DateLayout, doc.CheckIn, s.loc)
		out, errOut := time.ParseInLocation(stay.DateLayout, doc.CheckOut, s.loc)
		if errIn == nil && errOut == nil {
			st := stay.Reconstruct(in, out)
			sess.Stay = &st
		}
	}
	for _, o := range doc.Offers {
		sess.Offers = append(sess.Offers, cart.RoomOffer(o))
	}
	lines := make([]cart.Line, 0, len(doc.Cart))
	for _, l := range doc.Cart {
		lines = append(lines, cart.ReconstructLine(l.RoomTypeID, l.Name, l.RatePerNight, l.MaxGuests, l.Quantity))
	}
	sess.Cart = cart.Reconstruct(lines)
	return sess
}
