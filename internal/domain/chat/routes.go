package chat

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the REST endpoints. open runs before OpenInquiry
// (optional authentication, rate limiting).
func (h *Handler) RegisterRoutes(public, protected, admin *gin.RouterGroup, open ...gin.HandlerFunc) {
	public.POST("/inquiries", append(open, h.OpenInquiry)...)

	protected.GET("/inquiries/my", h.GetMyInquiries)
	protected.GET("/inquiries/:id/messages", h.GetMessages)
	protected.POST("/inquiries/:id/messages", h.SendMessage)

	admin.GET("/inquiries", h.ListInquiries)
	admin.POST("/inquiries/:id/close", h.CloseInquiry)
}
