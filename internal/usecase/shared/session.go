package shared

import (
	"context"
	"time"

	"resort-booking/internal/domain/session"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// LoadSession returns the stored session, or a fresh one under the same id
// when it expired or never existed. The cookie middleware mints the id.
func LoadSession(ctx context.Context, store SessionStore, id uuid.UUID, locale string, now time.Time) (*session.Session, error) {
	s, err := store.Load(ctx, id)
	if err == nil {
		if locale != "" {
			s.Locale = locale
		}
		return s, nil
	}
	if !errs.Is(err, errs.ErrSessionNotFound) {
		return nil, err
	}
	s = session.New(locale, now)
	s.ID = id
	return s, nil
}
