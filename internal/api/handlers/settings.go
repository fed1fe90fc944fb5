package handlers

import (
	"context"
	"net/http"

	"solar-sizer/internal/api/models"
	"solar-sizer/internal/store"

	"github.com/gin-gonic/gin"
)

// SettingsStore reads and writes user settings.
type SettingsStore interface {
	SettingsReader
	SaveSettings(ctx context.Context, s store.Settings) error
}

type SettingsHandler struct {
	store SettingsStore
}

func NewSettingsHandler(s SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewSettingsResponse(s))
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	ctx := c.Request.Context()
	current, err := h.store.GetSettings(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	next := store.Settings{
		ExchangeRate:    req.ExchangeRate,
		TariffPerKWh:    req.TariffPerKWh,
		NarrativeAPIKey: current.NarrativeAPIKey,
	}
	if req.NarrativeAPIKey != nil {
		next.NarrativeAPIKey = *req.NarrativeAPIKey
	}
	if err := h.store.SaveSettings(ctx, next); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewSettingsResponse(next))
}
