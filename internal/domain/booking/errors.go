package booking

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDates         = errors.New("invalid dates")
	ErrInvalidCapacity      = errors.New("invalid capacity")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomNotAvailable     = errors.New("room not available")
	ErrNotFound             = errors.New("booking not found")
	ErrAlreadyCancelled     = errors.New("booking already cancelled")
	ErrCancellationDeadline = errors.New("cancellation deadline passed")
	ErrInvalidStatus        = errors.New("invalid status")
)
