package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelbook/internal/pkg/pagination"
	"travelbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications returns the caller's notifications, newest first.
// @Router /api/v1/notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	page := pagination.FromQuery(c)
	items, total, unread, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), page.Limit, page.Offset)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":        items,
		"unread_count": unread,
		"pagination":   page.Meta(total),
	})
}

// @Router /api/v1/notifications/unread-count [get]
func (h *Handler) GetUnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": n})
}

// @Router /api/v1/notifications/{id}/read [patch]
func (h *Handler) MarkAsRead(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		return
	}
	if err := h.service.MarkAsRead(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// @Router /api/v1/notifications/read-all [post]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	n, err := h.service.MarkAllAsRead(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": n})
}

// @Router /api/v1/notifications/{id} [delete]
func (h *Handler) DeleteNotification(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notification deleted"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrNotificationNotFound) {
		response.NotFound(c, "Notification")
		return
	}
	response.Internal(c, err)
}

func notificationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.InvalidID(c, "notification")
		return 0, false
	}
	return id, true
}
