package password

import (
	"resort-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooShort = errs.Newf("password must be at least %d characters long", MinLength)
	ErrTooLong  = errs.Newf("password must be at most %d bytes long", MaxBytes)
	ErrMismatch = errs.New("password does not match")
)

const (
	MinLength = 8
	// bcrypt ignores everything past 72 bytes
	MaxBytes = 72
	Cost     = bcrypt.DefaultCost
)

// dummyHash is compared against when the account does not exist so that
// unknown emails take as long as wrong passwords.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lakeside-placeholder"), Cost)

func HashPassword(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len([]rune(plain)) < MinLength:
		return "", ErrTooShort
	case len(plain) > MaxBytes:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return errs.Wrap(err, "compare password")
	}
	return nil
}

// CompareDummy burns one bcrypt comparison and always fails.
func CompareDummy(plain string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
	return ErrMismatch
}
