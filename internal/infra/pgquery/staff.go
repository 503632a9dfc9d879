package pgquery

import (
	"context"
	"time"

	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Staff struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const staffColumns = `id, email, name, password_hash, role, is_active, last_login, created_at, updated_at`

func scanStaff(row interface{ Scan(dest ...any) error }) (Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.Role, &s.IsActive, &s.LastLogin, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const createStaff = `INSERT INTO staff (` + staffColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateStaff(ctx context.Context, db db.DBTX, arg Staff) error {
	_, err := db.Exec(ctx, createStaff,
		arg.ID, arg.Email, arg.Name, arg.PasswordHash, arg.Role, arg.IsActive, arg.LastLogin, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getStaffByID = `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

func (q *Queries) GetStaffByID(ctx context.Context, db db.DBTX, id uuid.UUID) (Staff, error) {
	return scanStaff(db.QueryRow(ctx, getStaffByID, id))
}

const getStaffByEmail = `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`

func (q *Queries) GetStaffByEmail(ctx context.Context, db db.DBTX, email string) (Staff, error) {
	return scanStaff(db.QueryRow(ctx, getStaffByEmail, email))
}

const updateStaffLastLogin = `UPDATE staff SET last_login = now(), updated_at = now() WHERE id = $1`

func (q *Queries) UpdateStaffLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, updateStaffLastLogin, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
