package queries

import (
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/pkg/i18n"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

func NewCartView(s *session.Session, currency string, locale i18n.Locale) *CartView {
	nights := s.Nights()
	guests := s.Guests.Total()

	lines := s.Cart.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, CartLineView{
			RoomTypeID:   l.RoomTypeID(),
			Name:         l.Name(),
			RatePerNight: l.RatePerNight(),
			MaxGuests:    l.MaxGuests(),
			Quantity:     l.Quantity(),
			MaxAvailable: s.MaxAvailable(l.RoomTypeID()),
			Subtotal:     l.Subtotal(max(nights, 1)),
		})
	}

	total := s.Cart.Total(max(nights, 1))
	v := &CartView{
		Lines:          views,
		Nights:         nights,
		Adults:         s.Guests.Adults,
		Children:       s.Guests.Children,
		Capacity:       s.Cart.Capacity(),
		RoomCount:      s.Cart.RoomCount(),
		Total:          total,
		Currency:       currency,
		FormattedTotal: i18n.FormatAmount(locale, total, currency),
		Feasible:       !s.Cart.IsEmpty() && s.Cart.IsFeasible(guests),
		Shortfall:      s.Cart.Shortfall(guests),
	}
	if s.Stay != nil {
		v.CheckIn = s.Stay.CheckInDate()
		v.CheckOut = s.Stay.CheckOutDate()
		v.CanCheckout = v.Feasible && v.RoomCount <= guests
	}
	return v
}

func NewOfferViews(s *session.Session) []OfferView {
	nights := max(s.Nights(), 1)
	out := make([]OfferView, 0, len(s.Offers))
	for _, o := range s.Offers {
		inCart := 0
		if l, ok := s.Cart.Line(o.RoomTypeID); ok {
			inCart = l.Quantity()
		}
		out = append(out, OfferView{
			RoomTypeID:     o.RoomTypeID,
			Name:           o.Name,
			RatePerNight:   o.RatePerNight,
			Currency:       o.Currency,
			MaxGuests:      o.MaxGuests,
			RoomsAvailable: o.RoomsAvailable,
			InCart:         inCart,
			CanAdd:         inCart < o.RoomsAvailable,
			StayTotal:      o.RatePerNight.Mul(decimal.NewFromInt(int64(nights))),
		})
	}
	return out
}

func NewBookingView(b *booking.Booking) (*BookingView, error) {
	v := &BookingView{
		ID:                   b.ID(),
		Reference:            b.Reference(),
		ReservationID:        b.ReservationID(),
		Status:               b.Status().String(),
		GuestName:            b.Guest().FullName(),
		GuestEmail:           b.Guest().Email(),
		GuestPhone:           b.Guest().Phone(),
		CheckIn:              b.Stay().CheckInDate(),
		CheckOut:             b.Stay().CheckOutDate(),
		Nights:               b.Stay().Nights(),
		RoomTotal:            b.RoomTotal(),
		AddOnTotal:           b.AddOnTotal(),
		Total:                b.Total(),
		Currency:             b.Currency(),
		Locale:               b.Locale(),
		PaymentMethod:        b.PaymentMethod().String(),
		PaymentRef:           b.PaymentRef(),
		PaymentFailure:       b.PaymentFailure(),
		PaidVia:              string(b.PaidVia()),
		PaidAt:               b.PaidAt(),
		ConfirmedBy:          b.ConfirmedBy(),
		Note:                 b.Note(),
		ReservationConfirmed: b.ReservationConfirmed(),
		CreatedAt:            b.CreatedAt(),
		UpdatedAt:            b.UpdatedAt(),
	}
	if err := copier.Copy(&v.Rooms, b.Rooms()); err != nil {
		return nil, err
	}
	v.AddOns = make([]BookingAddOnView, 0, len(b.AddOns()))
	if err := copier.Copy(&v.AddOns, b.AddOns()); err != nil {
		return nil, err
	}
	return v, nil
}
