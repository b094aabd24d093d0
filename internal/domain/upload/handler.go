package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbook/internal/pkg/pagination"
	"travelbook/internal/pkg/response"
)

// Handler serves the admin image library.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload stores an image sent as multipart field "file".
// @Router /api/v1/admin/uploads [post]
func (h *Handler) Upload(c *gin.Context) {
	// leave room for the multipart envelope
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxBytes()+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", ErrFileTooLarge.Error())
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Internal(c, err)
		return
	}
	defer file.Close()

	u, err := h.service.Upload(c.Request.Context(), c.GetInt64("user_id"), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusUnsupportedMediaType, "INVALID_FILE_TYPE", "only JPEG, PNG, GIF and WebP images are accepted")
		default:
			response.Internal(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, u)
}

// @Router /api/v1/admin/uploads [get]
func (h *Handler) List(c *gin.Context) {
	page := pagination.FromQuery(c)
	items, total, err := h.service.List(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "pagination": page.Meta(total)})
}

// @Router /api/v1/admin/uploads/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.NotFound(c, "Upload")
			return
		}
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}
