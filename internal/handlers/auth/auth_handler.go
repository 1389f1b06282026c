// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"
	"strconv"

	"autosalon-service/internal/domain/admin"
	"autosalon-service/internal/middleware"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/response"
	authsvc "autosalon-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves staff authentication and account management.
type AuthHandler struct {
	authService *authsvc.AuthService
}

func NewAuthHandler(authService *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a staff member
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "too many login attempts, please try again later", err)
		case errors.Is(err, xerrors.ErrUnauthorized):
			response.Unauthorized(c, "invalid credentials")
		case errors.Is(err, xerrors.ErrForbidden):
			response.Error(c, http.StatusForbidden, "account is deactivated", err)
		default:
			response.Error(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Logout revokes the current token
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if len(token) > 7 {
		token = token[7:] // strip "Bearer "
	}

	claims, err := h.authService.ValidateToken(c.Request.Context(), token)
	if err != nil {
		response.Unauthorized(c, "invalid token")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}

	response.Success(c, http.StatusOK, "logged out successfully", nil)
}

// Me returns the authenticated staff member's identity
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, "profile retrieved", gin.H{
		"admin_id": middleware.MustGetAdminID(c),
		"email":    middleware.GetEmail(c),
		"is_super": middleware.IsSuperAdmin(c),
	})
}

// ChangePassword changes the caller's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	var req admin.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), adminID, &req); err != nil {
		if errors.Is(err, xerrors.ErrUnauthorized) {
			response.Unauthorized(c, "current password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to change password", err)
		return
	}

	response.Success(c, http.StatusOK, "password changed successfully", nil)
}

// ========== Staff Management (Super Admin Only) ==========

// CreateAdmin creates a new staff account
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	callerID := middleware.MustGetAdminID(c)

	var req admin.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.CreateAdmin(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "email already in use", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create account", err)
		return
	}

	response.Success(c, http.StatusCreated, "staff account created", result)
}

// ListAdmins lists all staff accounts
func (h *AuthHandler) ListAdmins(c *gin.Context) {
	accounts, err := h.authService.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list accounts", err)
		return
	}

	response.Success(c, http.StatusOK, "staff accounts retrieved", gin.H{
		"admins": accounts,
		"count":  len(accounts),
	})
}

// SetActive enables or disables a staff account
func (h *AuthHandler) SetActive(c *gin.Context) {
	callerID := middleware.MustGetAdminID(c)

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid account ID", err)
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.authService.SetActive(c.Request.Context(), targetID, callerID, req.IsActive); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "cannot deactivate your own account", err)
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "account not found")
		default:
			response.Error(c, http.StatusInternalServerError, "failed to update account", err)
		}
		return
	}

	status := "deactivated"
	if req.IsActive {
		status = "activated"
	}
	response.Success(c, http.StatusOK, "account "+status+" successfully", nil)
}
