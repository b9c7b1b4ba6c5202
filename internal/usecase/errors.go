package usecase

import "hotel-booking-api/internal/pkg/errs"

// Sentinel errors the handler layer maps to HTTP status codes. Inner
// failures propagate marked with one of these; the orchestrator never
// downgrades them.
var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrRoomNotFound      = errs.New("room not found")
	ErrDiscountNotFound  = errs.New("discount not found")
	ErrInvalidStayRange  = errs.New("check-out must be later than check-in")
	ErrDiscountExpired   = errs.New("discount is expired and cannot be used")
	ErrUsageLimitReached = errs.New("discount has reached its maximum usage")
	ErrValidation        = errs.New("validation failed")
	ErrDuplicateCode     = errs.New("discount code already exists")
	ErrEmptyUpdate       = errs.New("no fields to update")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
