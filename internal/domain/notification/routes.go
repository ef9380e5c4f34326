package notification

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/ws/owner", h.OwnerFeed)
}
