package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelbook/internal/pkg/pagination"
	"travelbook/internal/pkg/response"
	"travelbook/internal/pkg/validator"
)

// Handler handles HTTP requests for the chat domain
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{UserID: c.GetInt64("user_id"), Role: c.GetString("role")}
}

// OpenInquiry starts a conversation. Authentication is optional.
// @Router /api/v1/inquiries [post]
func (h *Handler) OpenInquiry(c *gin.Context) {
	var req OpenInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	inq, msg, err := h.service.Open(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"inquiry": inq, "message": msg})
}

// @Router /api/v1/inquiries/my [get]
func (h *Handler) GetMyInquiries(c *gin.Context) {
	page := pagination.FromQuery(c)
	items, total, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"), page.Limit, page.Offset)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "pagination": page.Meta(total)})
}

// @Router /api/v1/inquiries/{id}/messages [get]
func (h *Handler) GetMessages(c *gin.Context) {
	id, ok := inquiryID(c)
	if !ok {
		return
	}
	page := pagination.FromQuery(c)

	msgs, err := h.service.Messages(c.Request.Context(), actorFrom(c), id, page.Limit, page.Offset)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": msgs})
}

// @Router /api/v1/inquiries/{id}/messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	id, ok := inquiryID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	msg, err := h.service.Reply(c.Request.Context(), actorFrom(c), id, req.Content)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

// @Router /api/v1/admin/inquiries [get]
func (h *Handler) ListInquiries(c *gin.Context) {
	status := InquiryStatus(c.Query("status"))
	if status != "" && status != InquiryOpen && status != InquiryClosed {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be open or closed")
		return
	}
	page := pagination.FromQuery(c)

	items, total, err := h.service.List(c.Request.Context(), status, page.Limit, page.Offset)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "pagination": page.Meta(total)})
}

// @Router /api/v1/admin/inquiries/{id}/close [post]
func (h *Handler) CloseInquiry(c *gin.Context) {
	id, ok := inquiryID(c)
	if !ok {
		return
	}

	inq, err := h.service.Close(c.Request.Context(), id)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inquiry": inq})
}

func inquiryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.InvalidID(c, "inquiry")
		return 0, false
	}
	return id, true
}

func handleInquiryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInquiryNotFound):
		response.NotFound(c, "Inquiry")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrInquiryClosed):
		response.Error(c, http.StatusConflict, "INQUIRY_CLOSED", err.Error())
	case errors.Is(err, ErrEmptyMessage):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Internal(c, err)
	}
}
