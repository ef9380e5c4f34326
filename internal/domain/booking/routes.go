package booking

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the booking endpoints; guards run before every handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	bookings := rg.Group("/bookings", guards...)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetMyBookings)
		bookings.POST("/:bookingId/cancel", h.CancelBooking)
	}
}
