package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Search and cart errors
	ErrInvalidStay          = errors.New("invalid stay dates")
	ErrInvalidGuestCount    = errors.New("invalid guest count")
	ErrOfferNotFound        = errors.New("room offer not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrStayRequired         = errors.New("stay dates required")
	ErrInsufficientCapacity = errors.New("insufficient room capacity")
	ErrTooManyRooms         = errors.New("more rooms selected than guests")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// Provider errors
	ErrProviderUnavailable      = errors.New("provider unavailable")
	ErrPaymentFailed            = errors.New("payment failed")
	ErrPaymentMethodUnavailable = errors.New("payment method unavailable")
	ErrInvalidWebhook           = errors.New("invalid webhook")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
