package response

import (
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
)

type BookingListResponse struct {
	Items      []*queries.BookingListItem `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: items}
	if res.Items == nil {
		res.Items = []*queries.BookingListItem{}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CheckoutResponse struct {
	Booking    *queries.BookingView `json:"booking"`
	Invoice    *payment.Invoice     `json:"invoice,omitempty"`
	CardIntent *payment.CardIntent  `json:"card_intent,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Booking:    r.Booking,
		Invoice:    r.Invoice,
		CardIntent: r.CardIntent,
	}
}
