package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes registers upload routes under the admin group.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	uploads := admin.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.List)
		uploads.DELETE("/:id", h.Delete)
	}
}
