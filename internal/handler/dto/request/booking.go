package request

type GuestBookingQuery struct {
	Email string `form:"email" binding:"required,email"`
}

type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending_payment paid cancelled"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After  string `form:"after"`
}

type ConfirmPaymentRequest struct {
	Note string `json:"note" binding:"max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
