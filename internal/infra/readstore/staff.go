package readstore

import (
	"context"
	"log/slog"
	"strings"

	"resort-booking/internal/infra"
	"resort-booking/internal/infra/converter"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadQueries interface {
	GetStaffByID(ctx context.Context, db db.DBTX, id uuid.UUID) (pgquery.Staff, error)
	GetStaffByEmail(ctx context.Context, db db.DBTX, email string) (pgquery.Staff, error)
}

type StaffReadStore struct {
	queries StaffReadQueries
	db      db.DBTX
	logger  *slog.Logger
}

func NewStaffReadStore(queries StaffReadQueries, db db.DBTX) *StaffReadStore {
	return &StaffReadStore{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	row, err := r.queries.GetStaffByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get staff by id", err)
	}
	return converter.AuthorizedStaffViewFromRow(row), nil
}

// FindByEmail returns inactive staff too; the caller decides whether they may log in.
func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedStaffView, string, error) {
	row, err := r.queries.GetStaffByEmail(ctx, r.db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", infra.WrapPgErr(r.logger, "failed to get staff by email", err)
	}
	return converter.AuthorizedStaffViewFromRow(row), row.PasswordHash, nil
}
