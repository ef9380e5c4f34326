package catalog

import (
	"github.com/gin-gonic/gin"

	"hotelbooking/internal/middleware"
)

// requireOwner rejects callers that may not create hotels before the body is read.
func (h *Handler) requireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := h.service.AuthorizeHotelCreate(c.Request.Context(), middleware.UserID(c)); err != nil {
			h.handleError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireHotelOwner expects the hotel id in the "hotelId" path param.
func (h *Handler) requireHotelOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := h.service.AuthorizeRoomAdd(c.Request.Context(), c.Param("hotelId"), middleware.UserID(c)); err != nil {
			h.handleError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
