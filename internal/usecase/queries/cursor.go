package queries

import (
	"encoding/base64"
	"encoding/binary"
	"time"

	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorVersion = 1
	// version byte, created_at in microseconds, booking id
	cursorLen = 1 + 8 + 16
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Cursor is the opaque keyset position handed to the desk for the next page.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor packs the last row's (created_at, id). Microseconds match
// what Postgres stores, so the keyset comparison is exact.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	buf := make([]byte, cursorLen)
	buf[0] = cursorVersion
	binary.BigEndian.PutUint64(buf[1:9], uint64(t.UnixMicro()))
	copy(buf[9:], id[:])
	return base64.RawURLEncoding.EncodeToString(buf)
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	buf, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "decode cursor"), ErrInvalidCursor)
	}
	if len(buf) != cursorLen || buf[0] != cursorVersion {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}

	id, err := uuid.FromBytes(buf[9:])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(err, ErrInvalidCursor)
	}
	micros := int64(binary.BigEndian.Uint64(buf[1:9]))
	return time.UnixMicro(micros).UTC(), id, nil
}

// ValidateLimit maps a missing limit to the default and caps the rest.
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
