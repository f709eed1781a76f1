package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Validation errors
	ErrMissingFields  = errors.New("missing required fields")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidRange   = errors.New("invalid date range")
	ErrInvalidStatus  = errors.New("invalid reservation status")
	ErrInvalidPayment = errors.New("invalid payment status")

	// Car errors
	ErrCarNotFound              = errors.New("car not found")
	ErrCarHasActiveReservations = errors.New("car has active reservations")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("car already booked for the selected dates")

	// Operation errors
	ErrTransactionFailed     = errors.New("booking transaction failed")
	ErrDependencyUnavailable = errors.New("storage unavailable")
)
