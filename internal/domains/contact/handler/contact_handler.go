package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"brandsite-backend/internal/domains/contact"
	"brandsite-backend/internal/shared/middleware"
	"brandsite-backend/internal/shared/response"
)

type Handler struct {
	service contact.Service
}

func NewHandler(service contact.Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/v1/contact from the public site.
func (h *Handler) Submit(c *gin.Context) {
	var req contact.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := contact.SubmitInput{
		SubmitContactRequest: req,
		IPAddress:            c.ClientIP(),
		UserAgent:            c.Request.UserAgent(),
	}

	receipt, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Thank you for contacting us. We will get back to you soon.",
		"contact": receipt,
	})
}

// List handles GET /api/v1/contacts for the admin console.
func (h *Handler) List(c *gin.Context) {
	var req contact.ListContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, result.Items, response.PageMeta(pagination))
}

// Get handles GET /api/v1/contacts/:id.
func (h *Handler) Get(c *gin.Context) {
	ct, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ct)
}

// Update handles PATCH /api/v1/contacts/:id.
func (h *Handler) Update(c *gin.Context) {
	var req contact.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ct, err := h.service.Update(c.Request.Context(), c.Param("id"), req, c.GetString(middleware.CtxUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ct)
}

// Delete handles DELETE /api/v1/contacts/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "contact deleted"})
}

// Export handles GET /api/v1/contacts/export and streams an xlsx workbook.
func (h *Handler) Export(c *gin.Context) {
	var req contact.ListContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	workbook, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("contacts-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, contact.ErrContactNotFound):
		response.NotFound(c, "contact not found")
	default:
		response.InternalServerError(c, "internal server error")
	}
}
