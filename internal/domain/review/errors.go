package review

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotEligible = errors.New("booking not eligible for review")
	ErrAlreadyReviewed    = errors.New("booking already reviewed")
	ErrHotelNotFound      = errors.New("hotel not found")
)
