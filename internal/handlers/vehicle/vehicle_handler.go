// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/response"
	vehiclesvc "autosalon-service/internal/service/vehicle"
	"autosalon-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// VehicleHandler serves the CMS catalog-management endpoints.
type VehicleHandler struct {
	vehicleService *vehiclesvc.VehicleService
}

func NewVehicleHandler(vehicleService *vehiclesvc.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// Create adds a new vehicle. The raw body is checked against the vehicle
// schema before binding.
func (h *VehicleHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	if err := validation.Validate(validation.SchemaVehicle, body); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle payload", err)
		return
	}

	var req vehicle.CreateVehicleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.vehicleService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "unknown fuel or transmission type", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create vehicle", err)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle created successfully", result)
}

// Update edits an existing vehicle
func (h *VehicleHandler) Update(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.vehicleService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "vehicle not found")
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "unknown fuel or transmission type", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to update vehicle", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "vehicle updated successfully", result)
}

// Delete soft-deletes a vehicle
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.vehicleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle deleted successfully", nil)
}

// SetFeatured toggles the landing-page highlight flag
func (h *VehicleHandler) SetFeatured(c *gin.Context) {
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.vehicleService.SetFeatured(c.Request.Context(), c.Param("id"), req.Featured); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "featured flag updated", nil)
}

// ListExclusive returns the showcase in curated order for the reorder screen
func (h *VehicleHandler) ListExclusive(c *gin.Context) {
	vehicles, err := h.vehicleService.ListExclusive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list exclusive vehicles", err)
		return
	}

	response.Success(c, http.StatusOK, "exclusive vehicles retrieved", gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// ReorderExclusive applies a complete new showcase order
func (h *VehicleHandler) ReorderExclusive(c *gin.Context) {
	var req vehicle.ReorderExclusiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.vehicleService.ReorderExclusive(c.Request.Context(), &req); err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "order must list every exclusive vehicle exactly once", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to reorder vehicles", err)
		return
	}

	response.Success(c, http.StatusOK, "exclusive order updated", nil)
}
