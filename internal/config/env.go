package config

import (
	"log"
	"os"
	"strings"
)

const (
	defaultDBPath = "./solar.db"
	defaultPort   = "8080"
)

// Env holds process configuration sourced from environment variables.
type Env struct {
	Port             string
	Mode             string // API_ENV; "production" switches gin to release mode
	DBPath           string
	EngineConfig     string // optional YAML engine config
	CatalogFile      string // overrides catalog_file from EngineConfig
	LocationsFile    string
	NarrativeAPIKey  string
	NarrativeBaseURL string
	AllowedOrigins   []string // CORS_ALLOWED_ORIGINS, comma separated; empty allows any
}

// LoadEnv reads environment variables, after a best-effort .env load.
func LoadEnv() Env {
	// Missing .env is fine; production injects real environment variables.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: failed to load .env: %v", err)
	}

	e := Env{
		Port:             os.Getenv("API_PORT"),
		Mode:             os.Getenv("API_ENV"),
		DBPath:           os.Getenv("DB_PATH"),
		EngineConfig:     os.Getenv("ENGINE_CONFIG"),
		CatalogFile:      os.Getenv("CATALOG_FILE"),
		LocationsFile:    os.Getenv("LOCATIONS_FILE"),
		NarrativeAPIKey:  os.Getenv("NARRATIVE_API_KEY"),
		NarrativeBaseURL: os.Getenv("NARRATIVE_BASE_URL"),
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			e.AllowedOrigins = append(e.AllowedOrigins, o)
		}
	}
	if e.Port == "" {
		e.Port = defaultPort
	}
	if e.DBPath == "" {
		e.DBPath = defaultDBPath
	}
	if e.LocationsFile == "" {
		e.LocationsFile = "./data/locations.json"
	}
	return e
}

func (e Env) Production() bool {
	return e.Mode == "production"
}
