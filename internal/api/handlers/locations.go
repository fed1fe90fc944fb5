package handlers

import (
	"net/http"

	"solar-sizer/internal/api/models"
	"solar-sizer/internal/data"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the HSP table.
type LocationHandler struct {
	locations *data.LocationList
}

func NewLocationHandler(locations *data.LocationList) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// ListLocations handles GET /api/v1/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	out := []models.LocationInfo{}
	if h.locations != nil {
		for _, loc := range h.locations.Locations {
			out = append(out, models.LocationInfo{
				City:         loc.City,
				Department:   loc.Department,
				PeakSunHours: loc.PeakSunHours,
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{"locations": out, "count": len(out)})
}
