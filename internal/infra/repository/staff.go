package repository

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/converter"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

type StaffWriteQueries interface {
	CreateStaff(ctx context.Context, db db.DBTX, arg pgquery.Staff) error
	UpdateStaffLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
}

type StaffRepository struct {
	queries StaffWriteQueries
	logger  *slog.Logger
	now     func() time.Time
}

func NewStaffRepository(queries StaffWriteQueries) *StaffRepository {
	return &StaffRepository{
		queries: queries,
		logger:  slog.Default(),
		now:     time.Now,
	}
}

func (r *StaffRepository) Create(ctx context.Context, tx db.DBTX, s *staff.Staff) error {
	row := converter.StaffToRow(s)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = r.now()
		row.UpdatedAt = row.CreatedAt
	}
	if err := r.queries.CreateStaff(ctx, tx, row); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create staff", err)
	}
	return nil
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error {
	affected, err := r.queries.UpdateStaffLastLogin(ctx, tx, staffID)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update staff last login", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff not found", nil)
	}
	return nil
}
