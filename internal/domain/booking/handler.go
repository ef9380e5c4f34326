package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking
// @Summary		Book a room
// @Description	Dates are YYYY-MM-DD or RFC 3339; the stay is [checkInDate, checkOutDate).
// @Tags		Bookings
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreateBookingRequest	true	"payload"
// @Success		200	{object}	BookingResponse
// @Failure		400	{object}	response.Envelope	"INVALID_REQUEST, INVALID_DATE(S), INVALID_CAPACITY or ROOM_NOT_AVAILABLE"
// @Failure		403	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	b, err := h.service.BookRoom(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToBookingResponse(b))
}

// GetMyBookings
// @Summary		List my bookings
// @Tags		Bookings
// @Security	BearerAuth
// @Produce		json
// @Param		status	query	string	false	"confirmed | cancelled"
// @Success		200	{array}		BookingResponse
// @Failure		400	{object}	response.Envelope
// @Router		/bookings [get]
func (h *Handler) GetMyBookings(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil || validator.Validate(q) != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	var status *BookingStatus
	if q.Status != "" {
		st := BookingStatus(q.Status)
		status = &st
	}

	bookings, err := h.service.ListMyBookings(c.Request.Context(), middleware.UserID(c), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// CancelBooking
// @Summary		Cancel a booking
// @Description	Only the guest who made the booking, and only before the check-in day.
// @Tags		Bookings
// @Security	BearerAuth
// @Produce		json
// @Param		bookingId	path	string	true	"Booking ID"
// @Success		200	{object}	BookingResponse
// @Failure		400	{object}	response.Envelope	"ALREADY_CANCELLED or CANCELLATION_DEADLINE_PASSED"
// @Failure		403	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/bookings/{bookingId}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), middleware.UserID(c), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToBookingResponse(b))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE")
	case errors.Is(err, ErrInvalidDates):
		response.Error(c, http.StatusBadRequest, "INVALID_DATES")
	case errors.Is(err, ErrInvalidCapacity):
		response.Error(c, http.StatusBadRequest, "INVALID_CAPACITY")
	case errors.Is(err, ErrRoomNotAvailable):
		response.Error(c, http.StatusBadRequest, "ROOM_NOT_AVAILABLE")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusBadRequest, "ALREADY_CANCELLED")
	case errors.Is(err, ErrCancellationDeadline):
		response.Error(c, http.StatusBadRequest, "CANCELLATION_DEADLINE_PASSED")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	}
}
