// internal/handlers/favorites/favorites_handler.go
package favorites

import (
	"errors"
	"net/http"

	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/response"
	favoritessvc "autosalon-service/internal/service/favorites"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler serves the visitor saved-vehicles list. The visitor is
// identified by the opaque X-Visitor-Token header the frontend generates.
type FavoritesHandler struct {
	favoritesService *favoritessvc.FavoritesService
}

func NewFavoritesHandler(favoritesService *favoritessvc.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
	}
}

func visitorToken(c *gin.Context) string {
	return c.GetHeader("X-Visitor-Token")
}

// List returns the visitor's saved vehicles
func (h *FavoritesHandler) List(c *gin.Context) {
	vehicles, err := h.favoritesService.List(c.Request.Context(), visitorToken(c))
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "missing visitor token", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load favorites", err)
		return
	}

	response.Success(c, http.StatusOK, "favorites retrieved", gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// Add saves a vehicle to the visitor's list
func (h *FavoritesHandler) Add(c *gin.Context) {
	err := h.favoritesService.Add(c.Request.Context(), visitorToken(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "missing visitor token", err)
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "vehicle not found")
		default:
			response.Error(c, http.StatusInternalServerError, "failed to save favorite", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "favorite saved", nil)
}

// Remove drops a vehicle from the visitor's list
func (h *FavoritesHandler) Remove(c *gin.Context) {
	err := h.favoritesService.Remove(c.Request.Context(), visitorToken(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "missing visitor token", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to remove favorite", err)
		return
	}

	response.Success(c, http.StatusOK, "favorite removed", nil)
}
