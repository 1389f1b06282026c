// internal/handlers/inquiry/inquiry_handler.go
package inquiry

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"autosalon-service/internal/domain/inquiry"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/response"
	inquirysvc "autosalon-service/internal/service/inquiry"
	"autosalon-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// InquiryHandler serves the public contact form and the CMS inbox.
type InquiryHandler struct {
	inquiryService *inquirysvc.InquiryService
}

func NewInquiryHandler(inquiryService *inquirysvc.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// ========== Public ==========

// Submit accepts a contact-form submission. The raw body is checked against
// the inquiry schema before binding.
func (h *InquiryHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	if err := validation.Validate(validation.SchemaInquiry, body); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid inquiry payload", err)
		return
	}

	var req inquiry.CreateInquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.inquiryService.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "too many inquiries, please try again later", err)
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "referenced vehicle does not exist", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to submit inquiry", err)
		}
		return
	}

	response.Success(c, http.StatusCreated, "inquiry submitted successfully", result)
}

// ========== CMS Inbox ==========

// List returns a page of the inquiry inbox
func (h *InquiryHandler) List(c *gin.Context) {
	var filters inquiry.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filter parameters", err)
		return
	}

	result, err := h.inquiryService.List(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list inquiries", err)
		return
	}

	response.Success(c, http.StatusOK, "inquiries retrieved", result)
}

// Get returns one inquiry
func (h *InquiryHandler) Get(c *gin.Context) {
	result, err := h.inquiryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "inquiry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load inquiry", err)
		return
	}

	response.Success(c, http.StatusOK, "inquiry retrieved", result)
}

// MarkRead flags an inquiry as handled
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	if err := h.inquiryService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "inquiry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to mark inquiry as read", err)
		return
	}

	response.Success(c, http.StatusOK, "inquiry marked as read", nil)
}

// Delete removes an inquiry from the inbox
func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.inquiryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "inquiry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete inquiry", err)
		return
	}

	response.Success(c, http.StatusOK, "inquiry deleted successfully", nil)
}
