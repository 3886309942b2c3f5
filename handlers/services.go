package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/catalog"
)

// CatalogHandler serves the public catalogue.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, Logger: logger}
}

// ListServicesHandler handles GET /api/catalog/services?gender=.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context(), c.Query("gender"))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.Catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to load service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Catalog.ListStaff(c.Request.Context())
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list staff", err)
		return
	}
	c.JSON(http.StatusOK, staff)
}
