package admin

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	analytics := admin.Group("/analytics")
	{
		analytics.GET("/summary", h.GetSummary)
		analytics.GET("/bookings", h.GetMonthlyBookings)
		analytics.GET("/top-items", h.GetTopItems)
	}
}
