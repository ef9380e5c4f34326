package review

import "time"

type CreateReviewRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" binding:"max=2000"`
}

// ListReviewsQuery only has to parse; out-of-range values are clamped by
// Service.ListHotelReviews.
type ListReviewsQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	HotelID   string    `json:"hotelId"`
	BookingID string    `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToReviewResponse(rv *Review) ReviewResponse {
	return ReviewResponse{
		ID:        rv.ID,
		UserID:    rv.UserID,
		HotelID:   rv.HotelID,
		BookingID: rv.BookingID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
}
