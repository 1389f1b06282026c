// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"errors"
	"net/http"
	"strings"

	"autosalon-service/internal/catalog"
	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/response"
	"autosalon-service/internal/service/financing"
	"autosalon-service/internal/service/storefront"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public storefront endpoints.
type CatalogHandler struct {
	catalogService   *storefront.CatalogService
	financingService *financing.FinancingService
}

func NewCatalogHandler(catalogService *storefront.CatalogService, financingService *financing.FinancingService) *CatalogHandler {
	return &CatalogHandler{
		catalogService:   catalogService,
		financingService: financingService,
	}
}

// List returns the catalog, filtered and sorted per query parameters
func (h *CatalogHandler) List(c *gin.Context) {
	var criteria vehicle.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filter parameters", err)
		return
	}

	sortKey := catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortNewest)))

	result, err := h.catalogService.List(c.Request.Context(), criteria, sortKey)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load catalog", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicles retrieved", result)
}

// Get returns one vehicle by id
func (h *CatalogHandler) Get(c *gin.Context) {
	v, err := h.catalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle retrieved", v)
}

// Featured returns the landing-page highlights
func (h *CatalogHandler) Featured(c *gin.Context) {
	vehicles, err := h.catalogService.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load featured vehicles", err)
		return
	}

	response.Success(c, http.StatusOK, "featured vehicles retrieved", gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// Exclusive returns the curated exclusive showcase
func (h *CatalogHandler) Exclusive(c *gin.Context) {
	vehicles, err := h.catalogService.Exclusive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load exclusive vehicles", err)
		return
	}

	response.Success(c, http.StatusOK, "exclusive vehicles retrieved", gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// Compare builds the side-by-side comparison for 2 or 3 vehicles given as
// ?ids=a,b,c
func (h *CatalogHandler) Compare(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "missing ids parameter", nil)
		return
	}

	ids := make([]string, 0, 3)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	result, err := h.catalogService.Compare(c.Request.Context(), ids)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "comparison takes 2 or 3 distinct vehicles", err)
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "vehicle not found")
		default:
			response.Error(c, http.StatusInternalServerError, "failed to compare vehicles", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "comparison built", result)
}

// FilterOptions returns the filter panel metadata
func (h *CatalogHandler) FilterOptions(c *gin.Context) {
	meta, err := h.catalogService.FilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load filter options", err)
		return
	}

	response.Success(c, http.StatusOK, "filter options retrieved", meta)
}

// Financing evaluates the loan calculator for a vehicle
func (h *CatalogHandler) Financing(c *gin.Context) {
	var params financing.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid calculator parameters", err)
		return
	}

	result, err := h.financingService.CalculateForVehicle(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to evaluate financing", err)
		return
	}

	response.Success(c, http.StatusOK, "financing calculated", result)
}
