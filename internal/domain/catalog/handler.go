package catalog

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

// CreateHotel
// @Summary		Create hotel
// @Description	Owners only. Rating and review count start at zero.
// @Tags		Hotels
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreateHotelRequest	true	"payload"
// @Success		201	{object}	HotelResponse
// @Failure		400	{object}	response.Envelope
// @Failure		403	{object}	response.Envelope
// @Router		/hotels [post]
func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToHotelResponse(hotel))
}

// AddRoom
// @Summary		Add room to hotel
// @Tags		Hotels
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		hotelId	path	string				true	"Hotel ID"
// @Param		body	body	CreateRoomRequest	true	"payload"
// @Success		201	{object}	RoomResponse
// @Failure		400	{object}	response.Envelope	"INVALID_REQUEST or ROOM_ALREADY_EXISTS"
// @Failure		403	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/hotels/{hotelId}/rooms [post]
func (h *Handler) AddRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	room, err := h.service.AddRoom(c.Request.Context(), c.Param("hotelId"), middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToRoomResponse(room))
}

// ListHotels
// @Summary		Search hotels
// @Tags		Hotels
// @Security	BearerAuth
// @Produce		json
// @Param		city		query	string	false	"City"
// @Param		country		query	string	false	"Country"
// @Param		minRating	query	number	false	"Minimum rating"
// @Param		minPrice	query	number	false	"Minimum room price"
// @Param		maxPrice	query	number	false	"Maximum room price"
// @Success		200	{array}		HotelSummaryResponse
// @Failure		400	{object}	response.Envelope
// @Router		/hotels [get]
func (h *Handler) ListHotels(c *gin.Context) {
	var q ListHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}
	if errs := validator.Validate(q); errs != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}
	filters, err := q.Filters()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	hotels, err := h.service.ListHotels(c.Request.Context(), middleware.UserID(c), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]HotelSummaryResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, ToHotelSummaryResponse(&hotels[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// GetHotel
// @Summary		Hotel details with rooms
// @Tags		Hotels
// @Security	BearerAuth
// @Produce		json
// @Param		hotelId	path	string	true	"Hotel ID"
// @Success		200	{object}	HotelDetailResponse
// @Failure		404	{object}	response.Envelope
// @Router		/hotels/{hotelId} [get]
func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := h.service.GetHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToHotelDetailResponse(hotel))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN")
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
	case errors.Is(err, ErrRoomAlreadyExists):
		response.Error(c, http.StatusBadRequest, "ROOM_ALREADY_EXISTS")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	}
}
