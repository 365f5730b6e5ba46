package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"brandsite-backend/internal/domains/banner"
	"brandsite-backend/internal/infrastructure/storage"
	"brandsite-backend/internal/shared/response"
)

type Handler struct {
	service  banner.Service
	uploader *storage.Uploader
}

func NewHandler(service banner.Service, uploader *storage.Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

// Active handles GET /api/v1/banners/active for the public site.
func (h *Handler) Active(c *gin.Context) {
	var req banner.ActiveBannersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	items, err := h.service.Active(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAll handles GET /api/v1/banners for the admin console.
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create handles POST /api/v1/banners. The banner image is a required
// multipart file part; mobileImage is optional.
func (h *Handler) Create(c *gin.Context) {
	var req banner.CreateBannerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := banner.CreateInput{CreateBannerRequest: req}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.BannerImage, "banners")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.Image = url
	}
	if fh, err := c.FormFile("mobileImage"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.BannerMobileImage, "banners/mobile")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.MobileImage = url
	}

	b, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// Update handles PUT /api/v1/banners/:id.
func (h *Handler) Update(c *gin.Context) {
	var req banner.UpdateBannerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.BannerImage, "banners")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		req.Image = &url
	}
	if fh, err := c.FormFile("mobileImage"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.BannerMobileImage, "banners/mobile")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		req.MobileImage = &url
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Delete handles DELETE /api/v1/banners/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "banner deleted"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, banner.ErrImageRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, banner.ErrBannerNotFound):
		response.NotFound(c, "banner not found")
	default:
		response.InternalServerError(c, "internal server error")
	}
}
