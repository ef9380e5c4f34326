package review

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the review endpoints; guards apply to posting a review.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, guards ...gin.HandlerFunc) {
	handlers := append([]gin.HandlerFunc{}, guards...)
	protected.POST("/reviews", append(handlers, h.Create)...)
	protected.GET("/hotels/:hotelId/reviews", h.ListByHotel)
}
