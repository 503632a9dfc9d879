package converter

import (
	"encoding/json"
	"time"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/guest"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/pkg/pgconv"
	"resort-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// JSONB shapes of the rooms and add_ons columns.
type roomJSON struct {
	RoomTypeID   string          `json:"room_type_id"`
	Name         string          `json:"name"`
	RatePerNight decimal.Decimal `json:"rate_per_night"`
	Adults       int             `json:"adults"`
	Children     int             `json:"children"`
}

type addOnJSON struct {
	Code      string          `json:"code"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

func BookingToRow(b *booking.Booking) (pgquery.Booking, error) {
	s := b.Snapshot()

	rooms := make([]roomJSON, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		rooms = append(rooms, roomJSON(r))
	}
	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return pgquery.Booking{}, err
	}

	addOns := make([]addOnJSON, 0, len(s.AddOns))
	for _, a := range s.AddOns {
		addOns = append(addOns, addOnJSON(a))
	}
	addOnsJSON, err := json.Marshal(addOns)
	if err != nil {
		return pgquery.Booking{}, err
	}

	row := pgquery.Booking{
		ID:                   s.ID,
		Reference:            s.Reference,
		ReservationID:        s.ReservationID,
		Status:               s.Status.String(),
		GuestFirstName:       s.Guest.FirstName(),
		GuestLastName:        s.Guest.LastName(),
		GuestEmail:           s.Guest.Email(),
		GuestPhone:           s.Guest.Phone(),
		GuestCountry:         s.Guest.Country(),
		SpecialRequests:      s.Guest.SpecialRequests(),
		CheckIn:              pgconv.DateFromTime(s.Stay.CheckIn()),
		CheckOut:             pgconv.DateFromTime(s.Stay.CheckOut()),
		Rooms:                roomsJSON,
		AddOns:               addOnsJSON,
		RoomTotal:            pgconv.DecimalToNumeric(s.RoomTotal),
		AddOnTotal:           pgconv.DecimalToNumeric(s.AddOnTotal),
		Currency:             s.Currency,
		Locale:               s.Locale,
		PaymentMethod:        s.PaymentMethod.String(),
		PaymentRef:           pgconv.TextFromString(s.PaymentRef),
		PaymentFailure:       pgconv.TextFromString(s.PaymentFailure),
		PaidVia:              pgconv.TextFromString(string(s.PaidVia)),
		PaidAt:               pgconv.TimePtrToPgtype(s.PaidAt),
		ConfirmedBy:          pgconv.UUIDPtrToPgtype(s.ConfirmedBy),
		Note:                 pgconv.TextFromString(s.Note),
		ReservationConfirmed: s.ReservationConfirmed,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
	return row, nil
}

// BookingFromRow rebuilds the aggregate. Stay dates come back at midnight in
// loc so night counts match what the guest booked.
func BookingFromRow(row pgquery.Booking, loc *time.Location) (*booking.Booking, error) {
	var rooms []roomJSON
	if err := json.Unmarshal(row.Rooms, &rooms); err != nil {
		return nil, err
	}
	var addOns []addOnJSON
	if len(row.AddOns) > 0 {
		if err := json.Unmarshal(row.AddOns, &addOns); err != nil {
			return nil, err
		}
	}

	roomTotal, err := pgconv.DecimalFromNumeric(row.RoomTotal)
	if err != nil {
		return nil, err
	}
	addOnTotal, err := pgconv.DecimalFromNumeric(row.AddOnTotal)
	if err != nil {
		return nil, err
	}

	s := booking.Snapshot{
		ID:            row.ID,
		Reference:     row.Reference,
		ReservationID: row.ReservationID,
		Status:        booking.Status(row.Status),
		Guest: guest.Reconstruct(guest.Input{
			FirstName:       row.GuestFirstName,
			LastName:        row.GuestLastName,
			Email:           row.GuestEmail,
			Phone:           row.GuestPhone,
			Country:         row.GuestCountry,
			SpecialRequests: row.SpecialRequests,
		}),
		Stay:                 stay.Reconstruct(pgconv.TimeFromDate(row.CheckIn, loc), pgconv.TimeFromDate(row.CheckOut, loc)),
		RoomTotal:            roomTotal,
		AddOnTotal:           addOnTotal,
		Currency:             row.Currency,
		Locale:               row.Locale,
		PaymentMethod:        payment.Method(row.PaymentMethod),
		PaymentRef:           pgconv.StringFromPgtype(row.PaymentRef),
		PaymentFailure:       pgconv.StringFromPgtype(row.PaymentFailure),
		PaidVia:              booking.PaidVia(pgconv.StringFromPgtype(row.PaidVia)),
		PaidAt:               pgconv.TimePtrFromPgtype(row.PaidAt),
		ConfirmedBy:          pgconv.UUIDPtrFromPgtype(row.ConfirmedBy),
		Note:                 pgconv.StringFromPgtype(row.Note),
		ReservationConfirmed: row.ReservationConfirmed,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
	for _, r := range rooms {
		s.Rooms = append(s.Rooms, booking.Room(r))
	}
	for _, a := range addOns {
		s.AddOns = append(s.AddOns, addon.Line(a))
	}
	return booking.Reconstruct(s), nil
}

func BookingListItemFromRow(row pgquery.BookingListRow) (*queries.BookingListItem, error) {
	roomTotal, err := pgconv.DecimalFromNumeric(row.RoomTotal)
	if err != nil {
		return nil, err
	}
	addOnTotal, err := pgconv.DecimalFromNumeric(row.AddOnTotal)
	if err != nil {
		return nil, err
	}
	return &queries.BookingListItem{
		ID:         row.ID,
		Reference:  row.Reference,
		Status:     row.Status,
		GuestName:  row.GuestFirstName + " " + row.GuestLastName,
		GuestEmail: row.GuestEmail,
		CheckIn:    formatDate(row.CheckIn),
		CheckOut:   formatDate(row.CheckOut),
		Total:      roomTotal.Add(addOnTotal),
		Currency:   row.Currency,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func formatDate(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(stay.DateLayout)
}
