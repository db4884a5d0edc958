package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Spot errors
	ErrSpotNotFound = errors.New("parking spot not found")
	ErrSpotInactive = errors.New("parking spot is not active")
	ErrNotSpotOwner = errors.New("user does not own this parking spot")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrNotBookingOwner       = errors.New("user does not own this booking")
	ErrSlotConflict          = errors.New("time slot conflicts with an existing booking")
	ErrNotAvailableOnDay     = errors.New("spot has no availability on that day")
	ErrOutsideOperatingHours = errors.New("requested time is outside operating hours")

	// Posting errors
	ErrPostingNotFound = errors.New("posting not found")
	ErrPostingReserved = errors.New("posting is already reserved")
	ErrInvalidSpan     = errors.New("requested span is not contained in the posting")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email address is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")

	// Validation errors
	ErrInvalidDate      = errors.New("invalid date format")
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
