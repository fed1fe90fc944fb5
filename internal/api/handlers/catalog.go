package handlers

import (
	"net/http"

	"solar-sizer/internal/model"
	"solar-sizer/internal/sizing"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the equipment tables the engine ranks from.
type CatalogHandler struct {
	catalog model.Catalog
}

func NewCatalogHandler(catalog model.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListPanels handles GET /api/v1/catalog/panels
func (h *CatalogHandler) ListPanels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"panels": h.catalog.Panels, "count": len(h.catalog.Panels)})
}

// ListInverters handles GET /api/v1/catalog/inverters. ?connection= limits
// the list to inverters compatible with that connection type.
func (h *CatalogHandler) ListInverters(c *gin.Context) {
	inverters := h.catalog.Inverters
	if q := c.Query("connection"); q != "" {
		conn, err := model.ParseConnectionType(q)
		if err != nil {
			badRequest(c, "INVALID_INPUT", err)
			return
		}
		inverters = sizing.FilterInverters(conn, inverters)
	}
	c.JSON(http.StatusOK, gin.H{"inverters": inverters, "count": len(inverters)})
}

// ListBatteries handles GET /api/v1/catalog/batteries
func (h *CatalogHandler) ListBatteries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"batteries": h.catalog.Batteries, "count": len(h.catalog.Batteries)})
}
