package ids

import "github.com/google/uuid"

const (
	PrefixUser    = "usr"
	PrefixHotel   = "hotel"
	PrefixRoom    = "room"
	PrefixBooking = "booking"
	PrefixReview  = "review"
)

// New returns an opaque identifier such as "hotel_6f1c...".
func New(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
