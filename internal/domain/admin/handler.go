package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSummary returns dashboard counters.
// @Router /api/v1/admin/analytics/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// @Router /api/v1/admin/analytics/bookings [get]
func (h *Handler) GetMonthlyBookings(c *gin.Context) {
	months, ok := intQuery(c, "months", DefaultMonths)
	if !ok {
		return
	}
	points, err := h.service.MonthlyBookings(c.Request.Context(), months)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": points})
}

// @Router /api/v1/admin/analytics/top-items [get]
func (h *Handler) GetTopItems(c *gin.Context) {
	limit, ok := intQuery(c, "limit", DefaultTopItems)
	if !ok {
		return
	}
	items, err := h.service.TopItems(c.Request.Context(), limit)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", key+" must be a positive integer")
		return 0, false
	}
	return n, true
}
