package booking

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransitionTo: pending_payment -> paid | cancelled. Nothing leaves a
// terminal status.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPendingPayment && next.IsTerminal()
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// PaidVia records who or what settled the booking.
type PaidVia string

const (
	PaidViaQPay   PaidVia = "qpay"
	PaidViaCard   PaidVia = "card"
	PaidViaManual PaidVia = "manual"
)
