package main

import (
	"fmt"
	"log"
	"os"

	"solar-sizer/internal/api"
	"solar-sizer/internal/api/handlers"
	"solar-sizer/internal/config"
	"solar-sizer/internal/data"
	"solar-sizer/internal/db"
	"solar-sizer/internal/migrations"
	"solar-sizer/internal/narrative"
	"solar-sizer/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := buildEngine(env)
	if err != nil {
		log.Fatalf("Failed to configure engine: %v", err)
	}

	conn, err := db.Open(env.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()
	if err := migrations.Up(conn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if v, err := migrations.Version(conn); err == nil {
		log.Printf("Database %s at schema version %d", env.DBPath, v)
	}
	st := store.New(conn)
	engine.Settings = st

	engine.Cache = data.ResultCacheFromEnv()
	defer engine.Cache.Close()

	router := api.NewRouter(api.Deps{
		Engine:         engine,
		Store:          st,
		AllowedOrigins: env.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%s", env.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildEngine(env config.Env) (*handlers.Engine, error) {
	var cfg *config.Config
	if env.EngineConfig != "" {
		c, err := config.Load(env.EngineConfig)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded engine config from %s", env.EngineConfig)
		cfg = c
	}

	catalog := cfg.Catalog()
	if env.CatalogFile != "" {
		c, err := data.LoadCatalog(env.CatalogFile)
		if err != nil {
			return nil, err
		}
		catalog = c
	}
	log.Printf("Catalog: %d panels, %d inverters, %d batteries",
		len(catalog.Panels), len(catalog.Inverters), len(catalog.Batteries))

	locations, err := data.LoadLocationsOrDefault(env.LocationsFile)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(env.LocationsFile); statErr != nil {
		log.Printf("Locations file %s not found, using built-in table", env.LocationsFile)
	}

	return &handlers.Engine{
		Catalog:         catalog,
		Params:          cfg.Params(),
		Locations:       locations,
		NarrativeAPIKey: env.NarrativeAPIKey,
		Narrator: func(apiKey string) narrative.Generator {
			return narrative.NewClient(apiKey, env.NarrativeBaseURL)
		},
	}, nil
}
