package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"brandsite-backend/internal/domains/blog"
	"brandsite-backend/internal/infrastructure/storage"
	"brandsite-backend/internal/shared/middleware"
	"brandsite-backend/internal/shared/response"
)

type Handler struct {
	service  blog.Service
	uploader *storage.Uploader
}

func NewHandler(service blog.Service, uploader *storage.Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

// List handles GET /api/v1/blogs. Anonymous callers only see published
// posts; editors can filter by any status.
func (h *Handler) List(c *gin.Context) {
	var req blog.ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, pagination, err := h.service.List(c.Request.Context(), req, middleware.IsPrivileged(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Items, response.PageMeta(pagination))
}

// Featured handles GET /api/v1/blogs/featured.
func (h *Handler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Categories handles GET /api/v1/blogs/categories.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// Get handles GET /api/v1/blogs/:identifier where identifier is a UUID or
// a slug.
func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("identifier"), middleware.IsPrivileged(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Create handles POST /api/v1/blogs. Accepts JSON or multipart with an
// optional featuredImage file part.
func (h *Handler) Create(c *gin.Context) {
	var req blog.CreateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := blog.CreateInput{
		CreateBlogRequest: req,
		Author:            c.GetString(middleware.CtxEmail),
	}

	if fh, err := c.FormFile("featuredImage"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.BlogFeaturedImage, "blogs")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.FeaturedImage = url
	}

	b, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// Update handles PUT /api/v1/blogs/:id.
func (h *Handler) Update(c *gin.Context) {
	var req blog.UpdateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if fh, err := c.FormFile("featuredImage"); err == nil {
		url, err := h.uploader.UploadImage(c.Request.Context(), fh, storage.BlogFeaturedImage, "blogs")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		req.FeaturedImage = &url
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Delete handles DELETE /api/v1/blogs/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "blog deleted"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, "blog not found")
	case errors.Is(err, blog.ErrSlugConflict):
		response.Conflict(c, "could not allocate a unique slug")
	default:
		response.InternalServerError(c, "internal server error")
	}
}
