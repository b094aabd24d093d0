package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelbook/internal/domain/catalog"
	"travelbook/internal/pkg/pagination"
	"travelbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// @Router /api/v1/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	page := pagination.FromQuery(c)
	kind := catalog.Kind(c.Query("item_type"))

	items, total, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), kind, page.Limit, page.Offset)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "pagination": page.Meta(total)})
}

// @Router /api/v1/favorites/{kind}/{id} [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	kind, id, ok := itemRef(c)
	if !ok {
		return
	}
	f, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), kind, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"favorite": f})
}

// @Router /api/v1/favorites/{kind}/{id} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	kind, id, ok := itemRef(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), kind, id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// @Router /api/v1/favorites/{kind}/{id}/check [get]
func (h *Handler) CheckFavorite(c *gin.Context) {
	kind, id, ok := itemRef(c)
	if !ok {
		return
	}
	yes, err := h.service.IsFavorite(c.Request.Context(), c.GetInt64("user_id"), kind, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_favorite": yes})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownKind):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown item type")
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Catalog item not found")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Favorite")
	case errors.Is(err, ErrAlreadyFavorite):
		response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Item is already in favorites")
	default:
		response.Internal(c, err)
	}
}

func itemRef(c *gin.Context) (catalog.Kind, int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.InvalidID(c, "item")
		return "", 0, false
	}
	return catalog.Kind(c.Param("kind")), id, true
}
