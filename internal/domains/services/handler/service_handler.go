package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"brandsite-backend/internal/domains/services"
	"brandsite-backend/internal/infrastructure/storage"
	"brandsite-backend/internal/shared/middleware"
	"brandsite-backend/internal/shared/response"
)

type Handler struct {
	business services.Business
	uploader *storage.Uploader
}

func NewHandler(business services.Business, uploader *storage.Uploader) *Handler {
	return &Handler{business: business, uploader: uploader}
}

// List handles GET /api/v1/services.
func (h *Handler) List(c *gin.Context) {
	var req services.ListServicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	items, err := h.business.List(c.Request.Context(), req, middleware.IsPrivileged(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /api/v1/services/:identifier where identifier is a UUID
// or a slug.
func (h *Handler) Get(c *gin.Context) {
	s, err := h.business.Get(c.Request.Context(), c.Param("identifier"), middleware.IsPrivileged(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s)
}

// Create handles POST /api/v1/services. Accepts JSON or multipart with
// optional image, icon and gallery file parts.
func (h *Handler) Create(c *gin.Context) {
	var req services.CreateServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := services.CreateInput{CreateServiceRequest: req}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.ServiceImage, "services")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.Image = url
	}
	if fh, err := c.FormFile("icon"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.ServiceIcon, "services/icons")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.Icon = url
	}
	if gallery, ok := h.uploadGallery(c); ok {
		input.Gallery = gallery
	} else {
		return
	}

	s, err := h.business.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, s)
}

// Update handles PUT /api/v1/services/:id.
func (h *Handler) Update(c *gin.Context) {
	var req services.UpdateServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.ServiceImage, "services")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		req.Image = &url
	}
	if fh, err := c.FormFile("icon"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.ServiceIcon, "services/icons")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		req.Icon = &url
	}

	s, err := h.business.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s)
}

// Delete handles DELETE /api/v1/services/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.business.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "service deleted"})
}

// uploadGallery processes every gallery file part. It reports false
// after writing the error response itself.
func (h *Handler) uploadGallery(c *gin.Context) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, true
	}

	urls := []string{}
	for _, fh := range form.File["gallery"] {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.GalleryImage, "services/gallery")
		if err != nil {
			response.BadRequest(c, err.Error())
			return nil, false
		}
		urls = append(urls, url)
	}
	if len(urls) == 0 {
		return nil, true
	}
	return urls, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, services.ErrInvalidPrice):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrServiceNotFound):
		response.NotFound(c, "service not found")
	case errors.Is(err, services.ErrSlugConflict):
		response.Conflict(c, "could not allocate a unique slug")
	default:
		response.InternalServerError(c, "internal server error")
	}
}
