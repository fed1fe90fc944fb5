package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"solar-sizer/internal/api/models"
	"solar-sizer/internal/data"
	"solar-sizer/internal/model"
	"solar-sizer/internal/narrative"
	"solar-sizer/internal/optimizer"
	"solar-sizer/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// SettingsReader supplies the tariff and exchange rate defaults.
type SettingsReader interface {
	GetSettings(ctx context.Context) (store.Settings, error)
}

// NarratorFactory builds a narrative generator for an API key.
type NarratorFactory func(apiKey string) narrative.Generator

// Engine resolves requests into project inputs and ranks them.
type Engine struct {
	Catalog   model.Catalog
	Params    optimizer.Params
	Locations *data.LocationList
	Settings  SettingsReader
	Cache     *data.ResultCache

	// Narrator is nil when narratives are disabled.
	Narrator NarratorFactory
	// NarrativeAPIKey is used when the stored settings carry no key.
	NarrativeAPIKey string
}

// Resolve applies defaults to req: autonomy 100%, HSP from the city table,
// tariff and exchange rate from stored settings.
func (e *Engine) Resolve(ctx context.Context, req models.ProjectRequest) (model.ProjectInput, store.Settings, error) {
	settings := store.DefaultSettings()
	if e.Settings != nil {
		s, err := e.Settings.GetSettings(ctx)
		if err != nil {
			return model.ProjectInput{}, settings, err
		}
		settings = s
	}

	in := model.ProjectInput{
		City:                  req.City,
		MonthlyConsumptionKWh: req.MonthlyConsumptionKWh,
		AutonomyPct:           100,
		PeakSunHours:          req.PeakSunHours,
		MaxBudget:             req.MaxBudget,
		RequiresBattery:       req.RequiresBattery,
		SpaceConstrained:      req.SpaceConstrained,
		TariffPerKWh:          req.TariffPerKWh,
		ExchangeRate:          req.ExchangeRate,
	}
	if req.AutonomyPct != nil {
		in.AutonomyPct = *req.AutonomyPct
	}
	if in.PeakSunHours == 0 && in.City != "" {
		loc, ok := e.Locations.Lookup(in.City)
		if !ok {
			return model.ProjectInput{}, settings, fmt.Errorf("%w: unknown city %q, send peak_sun_hours", model.ErrInvalidInput, in.City)
		}
		in.City = loc.City
		in.PeakSunHours = loc.PeakSunHours
	}
	if in.TariffPerKWh == 0 {
		in.TariffPerKWh = settings.TariffPerKWh
	}
	if in.ExchangeRate == 0 {
		in.ExchangeRate = settings.ExchangeRate
	}

	var err error
	if in.Connection, err = model.ParseConnectionType(req.Connection); err != nil {
		return model.ProjectInput{}, settings, err
	}
	if in.Priority, err = model.ParsePriority(req.Priority); err != nil {
		return model.ProjectInput{}, settings, err
	}
	if in.Category, err = model.ParseInstallationCategory(req.Category); err != nil {
		return model.ProjectInput{}, settings, err
	}
	return in, settings, nil
}

// Rank runs the optimizer, consulting the result cache first.
func (e *Engine) Rank(in model.ProjectInput) ([]optimizer.RankedConfiguration, bool, error) {
	key := data.CacheKey(in)
	if cached, ok := e.Cache.Get(key); ok {
		return cached, true, nil
	}
	out, err := optimizer.Rank(in, e.Catalog, e.Params)
	if err != nil {
		return nil, false, err
	}
	e.Cache.Set(key, out)
	return out, false, nil
}

// attachNarratives fills Narrative on each response. Failures are logged
// and leave the field empty.
func (e *Engine) attachNarratives(ctx context.Context, in model.ProjectInput, apiKey string, results []optimizer.RankedConfiguration, resp []models.ConfigurationResponse) {
	if e.Narrator == nil {
		return
	}
	if apiKey == "" {
		apiKey = e.NarrativeAPIKey
	}
	if apiKey == "" {
		log.Printf("[Narrative] Skipped: no API key configured")
		return
	}
	gen := e.Narrator(apiKey)

	var g errgroup.Group
	g.SetLimit(3)
	for i := range results {
		i := i
		g.Go(func() error {
			text, err := gen.Generate(ctx, in, results[i])
			if err != nil {
				log.Printf("[Narrative] %s: %v", results[i].Strategy, err)
				return nil
			}
			resp[i].Narrative = text
			return nil
		})
	}
	_ = g.Wait()
}

// ConfigurationHandler handles POST /api/v1/configurations
type ConfigurationHandler struct {
	engine *Engine
}

func NewConfigurationHandler(engine *Engine) *ConfigurationHandler {
	return &ConfigurationHandler{engine: engine}
}

func (h *ConfigurationHandler) RankConfigurations(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	in, settings, err := h.engine.Resolve(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	results, cached, err := h.engine.Rank(in)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.NewConfigurationResponses(results)
	if req.IncludeNarrative {
		h.engine.attachNarratives(c.Request.Context(), in, settings.NarrativeAPIKey, results, resp)
	}

	c.JSON(http.StatusOK, models.RankResponse{
		Project:        models.NewProjectSummary(in),
		Configurations: resp,
		Count:          len(resp),
		Cached:         cached,
	})
}
