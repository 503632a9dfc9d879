//go:build unit || e2e

package builder

import (
	"time"

	"resort-booking/internal/domain/staff"
	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:           uuid.New(),
		Email:        "frontdesk@example.com",
		Name:         "Front Desk",
		PasswordHash: "hashed_password",
		Role:         "operator",
		IsActive:     true,
	}
}

func (s *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StaffBuilder) BuildDomain() (*staff.Staff, error) {
	email, err := staff.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	return staff.NewStaff(email, s.Name, s.PasswordHash, role)
}

func (s *StaffBuilder) BuildReadModel() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       s.ID,
		Email:    s.Email,
		Name:     s.Name,
		Role:     s.Role,
		IsActive: s.IsActive,
	}
}

func (s *StaffBuilder) BuildRow() pgquery.Staff {
	return pgquery.Staff{
		ID:           s.ID,
		Email:        s.Email,
		Name:         s.Name,
		PasswordHash: s.PasswordHash,
		Role:         s.Role,
		IsActive:     s.IsActive,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Fluent builder methods
func (s *StaffBuilder) WithEmail(email string) *StaffBuilder {
	s.Email = email
	return s
}

func (s *StaffBuilder) WithName(name string) *StaffBuilder {
	s.Name = name
	return s
}

func (s *StaffBuilder) WithRole(role string) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) WithPasswordHash(hash string) *StaffBuilder {
	s.PasswordHash = hash
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}

// LoginDTO is the login body this staff member would send.
func (s *StaffBuilder) LoginDTO(password string) reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: s.Email, Password: password}
}
