package jwt

import (
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

const (
	issuer   = "resort-booking"
	audience = "staff-desk"
)

// Claims identify a staff member by the subject claim. The role travels in
// the token so the desk can gate routes without a database round trip;
// RequireAuth still reloads the member for /me.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) StaffID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "subject"), ErrInvalidToken)
	}
	return id, nil
}

type Option func(*Service)

// WithLeeway tolerates clock skew between API replicas.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	leeway    time.Duration
	now       func() time.Time
}

func NewService(secretKey string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) TokenDuration() time.Duration {
	return s.ttl
}

func (s *Service) GenerateAccessToken(staffID uuid.UUID, role staff.Role) (string, error) {
	now := s.now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   staffID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign access token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errs.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	return claims, nil
}
