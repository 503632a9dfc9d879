package pgquery

import (
	"context"
	"time"

	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID                   uuid.UUID
	Reference            string
	ReservationID        string
	Status               string
	GuestFirstName       string
	GuestLastName        string
	GuestEmail           string
	GuestPhone           string
	GuestCountry         string
	SpecialRequests      string
	CheckIn              pgtype.Date
	CheckOut             pgtype.Date
	Rooms                []byte
	AddOns               []byte
	RoomTotal            pgtype.Numeric
	AddOnTotal           pgtype.Numeric
	Currency             string
	Locale               string
	PaymentMethod        string
	PaymentRef           pgtype.Text
	PaymentFailure       pgtype.Text
	PaidVia              pgtype.Text
	PaidAt               pgtype.Timestamptz
	ConfirmedBy          pgtype.UUID
	Note                 pgtype.Text
	ReservationConfirmed bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type BookingListRow struct {
	ID             uuid.UUID
	Reference      string
	Status         string
	GuestFirstName string
	GuestLastName  string
	GuestEmail     string
	CheckIn        pgtype.Date
	CheckOut       pgtype.Date
	RoomTotal      pgtype.Numeric
	AddOnTotal     pgtype.Numeric
	Currency       string
	CreatedAt      time.Time
}

const bookingColumns = `id, reference, reservation_id, status,
	guest_first_name, guest_last_name, guest_email, guest_phone, guest_country, special_requests,
	check_in, check_out, rooms, add_ons, room_total, add_on_total, currency, locale,
	payment_method, payment_ref, payment_failure, paid_via, paid_at, confirmed_by, note,
	reservation_confirmed, created_at, updated_at`

const bookingListColumns = `id, reference, status, guest_first_name, guest_last_name, guest_email,
	check_in, check_out, room_total, add_on_total, currency, created_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.Reference, &b.ReservationID, &b.Status,
		&b.GuestFirstName, &b.GuestLastName, &b.GuestEmail, &b.GuestPhone, &b.GuestCountry, &b.SpecialRequests,
		&b.CheckIn, &b.CheckOut, &b.Rooms, &b.AddOns, &b.RoomTotal, &b.AddOnTotal, &b.Currency, &b.Locale,
		&b.PaymentMethod, &b.PaymentRef, &b.PaymentFailure, &b.PaidVia, &b.PaidAt, &b.ConfirmedBy, &b.Note,
		&b.ReservationConfirmed, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()
	var items []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func collectBookingList(rows pgx.Rows) ([]BookingListRow, error) {
	defer rows.Close()
	var items []BookingListRow
	for rows.Next() {
		var r BookingListRow
		if err := rows.Scan(
			&r.ID, &r.Reference, &r.Status, &r.GuestFirstName, &r.GuestLastName, &r.GuestEmail,
			&r.CheckIn, &r.CheckOut, &r.RoomTotal, &r.AddOnTotal, &r.Currency, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const createBooking = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
	$19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`

func (q *Queries) CreateBooking(ctx context.Context, db db.DBTX, arg Booking) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID, arg.Reference, arg.ReservationID, arg.Status,
		arg.GuestFirstName, arg.GuestLastName, arg.GuestEmail, arg.GuestPhone, arg.GuestCountry, arg.SpecialRequests,
		arg.CheckIn, arg.CheckOut, arg.Rooms, arg.AddOns, arg.RoomTotal, arg.AddOnTotal, arg.Currency, arg.Locale,
		arg.PaymentMethod, arg.PaymentRef, arg.PaymentFailure, arg.PaidVia, arg.PaidAt, arg.ConfirmedBy, arg.Note,
		arg.ReservationConfirmed, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

// Only the mutable columns are written back.
const updateBooking = `UPDATE bookings SET
	reservation_id = $2,
	status = $3,
	payment_ref = $4,
	payment_failure = $5,
	paid_via = $6,
	paid_at = $7,
	confirmed_by = $8,
	note = $9,
	reservation_confirmed = $10,
	updated_at = $11
WHERE id = $1`

func (q *Queries) UpdateBooking(ctx context.Context, db db.DBTX, arg Booking) (int64, error) {
	tag, err := db.Exec(ctx, updateBooking,
		arg.ID, arg.ReservationID, arg.Status, arg.PaymentRef, arg.PaymentFailure, arg.PaidVia,
		arg.PaidAt, arg.ConfirmedBy, arg.Note, arg.ReservationConfirmed, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBooking = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, db db.DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, id))
}

const getBookingForUpdate = getBooking + ` FOR UPDATE`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

const getBookingByPaymentRef = `SELECT ` + bookingColumns + ` FROM bookings
WHERE payment_method = $1 AND payment_ref = $2`

func (q *Queries) GetBookingByPaymentRef(ctx context.Context, db db.DBTX, method, ref string) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByPaymentRef, method, ref))
}

const listPendingPayments = `SELECT ` + bookingColumns + ` FROM bookings
WHERE status = 'pending_payment'
  AND payment_method = $1
  AND payment_ref IS NOT NULL
  AND created_at > $2
ORDER BY created_at
LIMIT $3`

func (q *Queries) ListPendingPayments(ctx context.Context, db db.DBTX, method string, createdAfter time.Time, limit int32) ([]Booking, error) {
	rows, err := db.Query(ctx, listPendingPayments, method, createdAfter, limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listUnconfirmedReservations = `SELECT ` + bookingColumns + ` FROM bookings
WHERE status = 'paid' AND reservation_confirmed = false AND reservation_id <> ''
ORDER BY updated_at
LIMIT $1`

func (q *Queries) ListUnconfirmedReservations(ctx context.Context, db db.DBTX, limit int32) ([]Booking, error) {
	rows, err := db.Query(ctx, listUnconfirmedReservations, limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// Bookings whose payment was never created. The idempotency window has
// passed, so no retry can resume them.
const listAbandonedCheckouts = `SELECT ` + bookingColumns + ` FROM bookings
WHERE status = 'pending_payment'
  AND payment_ref IS NULL
  AND created_at < $1
ORDER BY created_at
LIMIT $2`

func (q *Queries) ListAbandonedCheckouts(ctx context.Context, db db.DBTX, createdBefore time.Time, limit int32) ([]Booking, error) {
	rows, err := db.Query(ctx, listAbandonedCheckouts, createdBefore, limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listBookingsFirstPage = `SELECT ` + bookingListColumns + ` FROM bookings
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (q *Queries) ListBookingsFirstPage(ctx context.Context, db db.DBTX, status pgtype.Text, limit int32) ([]BookingListRow, error) {
	rows, err := db.Query(ctx, listBookingsFirstPage, status, limit)
	if err != nil {
		return nil, err
	}
	return collectBookingList(rows)
}

const listBookingsKeyset = `SELECT ` + bookingListColumns + ` FROM bookings
WHERE ($1::text IS NULL OR status = $1)
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (q *Queries) ListBookingsKeyset(ctx context.Context, db db.DBTX, status pgtype.Text, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]BookingListRow, error) {
	rows, err := db.Query(ctx, listBookingsKeyset, status, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, err
	}
	return collectBookingList(rows)
}
