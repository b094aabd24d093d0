package booking

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	protected.POST("/bookings", h.CreateBooking)
	protected.GET("/bookings/my", h.GetMyBookings)
	protected.GET("/bookings/:id", h.GetBooking)
	protected.POST("/bookings/:id/cancel", h.CancelBooking)

	admin.GET("/bookings", h.ListBookings)
	admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
}
