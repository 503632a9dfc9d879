package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferView is a search result annotated with the visitor's cart.
type OfferView struct {
	RoomTypeID     string          `json:"room_type_id"`
	Name           string          `json:"name"`
	RatePerNight   decimal.Decimal `json:"rate_per_night"`
	Currency       string          `json:"currency"`
	MaxGuests      int             `json:"max_guests"`
	RoomsAvailable int             `json:"rooms_available"`
	InCart         int             `json:"in_cart"`
	CanAdd         bool            `json:"can_add"`
	StayTotal      decimal.Decimal `json:"stay_total"`
}

type SearchResult struct {
	CheckIn  string      `json:"check_in"`
	CheckOut string      `json:"check_out"`
	Nights   int         `json:"nights"`
	Adults   int         `json:"adults"`
	Children int         `json:"children"`
	Offers   []OfferView `json:"offers"`
	Cart     *CartView   `json:"cart"`
}

type CartLineView struct {
	RoomTypeID   string          `json:"room_type_id"`
	Name         string          `json:"name"`
	RatePerNight decimal.Decimal `json:"rate_per_night"`
	MaxGuests    int             `json:"max_guests"`
	Quantity     int             `json:"quantity"`
	MaxAvailable int             `json:"max_available"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Lines          []CartLineView  `json:"lines"`
	CheckIn        string          `json:"check_in,omitempty"`
	CheckOut       string          `json:"check_out,omitempty"`
	Nights         int             `json:"nights"`
	Adults         int             `json:"adults"`
	Children       int             `json:"children"`
	Capacity       int             `json:"capacity"`
	RoomCount      int             `json:"room_count"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`
	FormattedTotal string          `json:"formatted_total"`
	Feasible       bool            `json:"feasible"`
	Shortfall      int             `json:"shortfall"`
	// CanCheckout also needs dates and at least one guest per room.
	CanCheckout bool `json:"can_checkout"`
}

type BookingRoomView struct {
	RoomTypeID   string          `json:"room_type_id"`
	Name         string          `json:"name"`
	RatePerNight decimal.Decimal `json:"rate_per_night"`
	Adults       int             `json:"adults"`
	Children     int             `json:"children"`
}

type BookingAddOnView struct {
	Code      string          `json:"code"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// BookingView is the full booking as shown to the guest and to staff.
type BookingView struct {
	ID                   uuid.UUID          `json:"id"`
	Reference            string             `json:"reference"`
	ReservationID        string             `json:"reservation_id"`
	Status               string             `json:"status"`
	GuestName            string             `json:"guest_name"`
	GuestEmail           string             `json:"guest_email"`
	GuestPhone           string             `json:"guest_phone,omitempty"`
	CheckIn              string             `json:"check_in"`
	CheckOut             string             `json:"check_out"`
	Nights               int                `json:"nights"`
	Rooms                []BookingRoomView  `json:"rooms"`
	AddOns               []BookingAddOnView `json:"add_ons"`
	RoomTotal            decimal.Decimal    `json:"room_total"`
	AddOnTotal           decimal.Decimal    `json:"add_on_total"`
	Total                decimal.Decimal    `json:"total"`
	Currency             string             `json:"currency"`
	Locale               string             `json:"locale"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentRef           string             `json:"payment_ref,omitempty"`
	PaymentFailure       string             `json:"payment_failure,omitempty"`
	PaidVia              string             `json:"paid_via,omitempty"`
	PaidAt               *time.Time         `json:"paid_at,omitempty"`
	ConfirmedBy          *uuid.UUID         `json:"confirmed_by,omitempty"`
	Note                 string             `json:"note,omitempty"`
	ReservationConfirmed bool               `json:"reservation_confirmed"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID       `json:"id"`
	Reference  string          `json:"reference"`
	Status     string          `json:"status"`
	GuestName  string          `json:"guest_name"`
	GuestEmail string          `json:"guest_email"`
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuthorizedStaffView represents read-optimized staff data with authorization info
type AuthorizedStaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
