// Package api wires the HTTP routes onto a gin engine.
package api

import (
	"net/http"

	"solar-sizer/internal/api/handlers"
	"solar-sizer/internal/api/middleware"
	"solar-sizer/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the routes need. Store may be nil, in which
// case settings and quote routes are not registered.
type Deps struct {
	Engine *handlers.Engine
	Store  *store.Store
	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(d.AllowedOrigins...))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if d.Store != nil {
			if err := d.Store.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
			status["database"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	})

	configurationHandler := handlers.NewConfigurationHandler(d.Engine)
	catalogHandler := handlers.NewCatalogHandler(d.Engine.Catalog)
	locationHandler := handlers.NewLocationHandler(d.Engine.Locations)
	strategyHandler := handlers.NewStrategyHandler(d.Engine.Params.Strategy)

	api := router.Group("/api/v1")
	{
		api.POST("/configurations", configurationHandler.RankConfigurations)

		api.GET("/catalog/panels", catalogHandler.ListPanels)
		api.GET("/catalog/inverters", catalogHandler.ListInverters)
		api.GET("/catalog/batteries", catalogHandler.ListBatteries)

		api.GET("/locations", locationHandler.ListLocations)
		api.GET("/strategies", strategyHandler.ListStrategies)

		if d.Store != nil {
			settingsHandler := handlers.NewSettingsHandler(d.Store)
			api.GET("/settings", settingsHandler.GetSettings)
			api.PUT("/settings", settingsHandler.UpdateSettings)

			quoteHandler := handlers.NewQuoteHandler(d.Engine, d.Store)
			api.POST("/quotes", quoteHandler.CreateQuote)
			api.GET("/quotes", quoteHandler.ListQuotes)
			api.GET("/quotes/:id", quoteHandler.GetQuote)
			api.DELETE("/quotes/:id", quoteHandler.DeleteQuote)
			api.GET("/quotes/:id/schedule", quoteHandler.GetSchedule)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
