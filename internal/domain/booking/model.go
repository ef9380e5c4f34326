package booking

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking reserves a room for the half-open night range [CheckIn, CheckOut).
// Both dates are UTC midnight.
type Booking struct {
	ID          string
	RoomID      string
	UserID      string
	HotelID     string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	TotalPrice  float64
	Status      BookingStatus
	BookingDate time.Time
	CancelledAt *time.Time
}

// Overlaps reports whether b and the range [checkIn, checkOut) share a night.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}
