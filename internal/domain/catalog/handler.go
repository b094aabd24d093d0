package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelbook/internal/pkg/pagination"
	"travelbook/internal/pkg/response"
	"travelbook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// resourceHandler serves one catalog kind.
type resourceHandler[T, R, V any] struct {
	res  *Resource[T, R, V]
	what string
}

// List returns a filtered page of items.
// @Router /api/v1/{kind} [get]
func (h *resourceHandler[T, R, V]) List(c *gin.Context) {
	page := pagination.FromQuery(c)
	f := Filters{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if v := c.Query("destination_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			response.InvalidID(c, "destination")
			return
		}
		f.DestinationID = id
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "featured must be true or false")
			return
		}
		f.Featured = &featured
	}

	items, total, err := h.res.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": page.Meta(total),
	})
}

// @Router /api/v1/{kind}/{id} [get]
func (h *resourceHandler[T, R, V]) Get(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	item, err := h.res.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// @Router /api/v1/admin/{kind} [post]
func (h *resourceHandler[T, R, V]) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	item, err := h.res.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// @Router /api/v1/admin/{kind}/{id} [put]
func (h *resourceHandler[T, R, V]) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}

	item, err := h.res.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// @Router /api/v1/admin/{kind}/{id} [delete]
func (h *resourceHandler[T, R, V]) Delete(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	if err := h.res.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": h.what + " deleted"})
}

func (h *resourceHandler[T, R, V]) id(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.InvalidID(c, h.what)
		return 0, false
	}
	return id, true
}

func (h *resourceHandler[T, R, V]) bind(c *gin.Context) (*R, bool) {
	req := new(R)
	if err := c.ShouldBindJSON(req); err != nil {
		response.InvalidBody(c)
		return nil, false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return nil, false
	}
	return req, true
}

func (h *resourceHandler[T, R, V]) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, h.what)
	case errors.Is(err, ErrUnknownDestination):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"DestinationID": "exists"})
	default:
		response.Internal(c, err)
	}
}
