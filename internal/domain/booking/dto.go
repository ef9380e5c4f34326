package booking

import "time"

type CreateBookingRequest struct {
	RoomID       string `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required,gt=0"`
}

type ListBookingsQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=confirmed cancelled"`
}

type BookingResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	RoomID       string        `json:"roomId"`
	HotelID      string        `json:"hotelId"`
	CheckInDate  string        `json:"checkInDate"`
	CheckOutDate string        `json:"checkOutDate"`
	Guests       int           `json:"guests"`
	TotalPrice   float64       `json:"totalPrice"`
	Status       BookingStatus `json:"status"`
	BookingDate  time.Time     `json:"bookingDate"`
	CancelledAt  *time.Time    `json:"cancelledAt,omitempty"`
}

func ToBookingResponse(b *Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		RoomID:       b.RoomID,
		HotelID:      b.HotelID,
		CheckInDate:  b.CheckIn.Format(dateLayout),
		CheckOutDate: b.CheckOut.Format(dateLayout),
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		BookingDate:  b.BookingDate,
		CancelledAt:  b.CancelledAt,
	}
}
