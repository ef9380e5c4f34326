package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	hotels := r.Group("/hotels")
	{
		hotels.POST("", h.requireOwner(), h.CreateHotel)
		hotels.GET("", h.ListHotels)
		hotels.GET("/:hotelId", h.GetHotel)
		hotels.POST("/:hotelId/rooms", h.requireHotelOwner(), h.AddRoom)
	}
}
