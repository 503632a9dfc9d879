package converter

import (
	"resort-booking/internal/domain/staff"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/pkg/pgconv"
	"resort-booking/internal/usecase/queries"
)

func StaffToRow(s *staff.Staff) pgquery.Staff {
	return pgquery.Staff{
		ID:           s.ID(),
		Email:        s.Email().Value(),
		Name:         s.Name(),
		PasswordHash: s.PasswordHash(),
		Role:         s.Role().String(),
		IsActive:     s.IsActive(),
		LastLogin:    pgconv.TimePtrToPgtype(s.LastLogin()),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func AuthorizedStaffViewFromRow(row pgquery.Staff) *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       row.ID,
		Email:    row.Email,
		Name:     row.Name,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
