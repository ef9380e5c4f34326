package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create
// @Summary		Review a completed stay
// @Description	One review per booking. Updates the hotel's running average rating.
// @Tags		Reviews
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreateReviewRequest	true	"payload"
// @Success		201	{object}	ReviewResponse
// @Failure		400	{object}	response.Envelope	"INVALID_REQUEST, BOOKING_NOT_ELIGIBLE or ALREADY_REVIEWED"
// @Failure		403	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/reviews [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	rv, err := h.service.PostReview(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToReviewResponse(rv))
}

// ListByHotel
// @Summary		List hotel reviews
// @Tags		Reviews
// @Security	BearerAuth
// @Produce		json
// @Param		hotelId	path	string	true	"Hotel ID"
// @Param		limit	query	int		false	"default 20, max 100"
// @Param		offset	query	int		false	"offset"
// @Success		200	{array}		ReviewResponse
// @Failure		404	{object}	response.Envelope
// @Router		/hotels/{hotelId}/reviews [get]
func (h *Handler) ListByHotel(c *gin.Context) {
	var q ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	reviews, err := h.service.ListHotelReviews(c.Request.Context(), c.Param("hotelId"), q.Limit, q.Offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, ToReviewResponse(&reviews[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN")
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND")
	case errors.Is(err, ErrBookingNotEligible):
		response.Error(c, http.StatusBadRequest, "BOOKING_NOT_ELIGIBLE")
	case errors.Is(err, ErrAlreadyReviewed):
		response.Error(c, http.StatusBadRequest, "ALREADY_REVIEWED")
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	}
}
