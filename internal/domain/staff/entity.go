package staff

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Staff is a resort employee who can look up bookings and confirm payments
// received outside the online flow.
type Staff struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStaff(email Email, name, passwordHash string, role Role) (*Staff, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > 100 {
		return nil, ErrInvalidName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Staff{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func ReconstructStaff(
	id uuid.UUID,
	email Email,
	name, passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Staff {
	return &Staff{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Staff) ID() uuid.UUID         { return s.id }
func (s *Staff) Email() Email          { return s.email }
func (s *Staff) Name() string          { return s.name }
func (s *Staff) PasswordHash() string  { return s.passwordHash }
func (s *Staff) Role() Role            { return s.role }
func (s *Staff) LastLogin() *time.Time { return s.lastLogin }
func (s *Staff) IsActive() bool        { return s.isActive }
func (s *Staff) CreatedAt() time.Time  { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time  { return s.updatedAt }
