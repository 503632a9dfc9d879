package usecase

import (
	"resort-booking/internal/domain/staff"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer or cookie token into the staff identity the
// auth middleware stores on the request.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return tokenValidator{jwt: jwtService}
}

func (v tokenValidator) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	staffID, err := claims.StaffID()
	if err != nil {
		return uuid.Nil, "", err
	}
	// a role removed since the token was issued invalidates the token
	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, jwt.ErrInvalidToken)
	}
	return staffID, role, nil
}
