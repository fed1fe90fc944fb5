package models

// ProjectRequest is the body of POST /api/v1/configurations.
type ProjectRequest struct {
	City                  string   `json:"city,omitempty"`
	MonthlyConsumptionKWh float64  `json:"monthly_consumption_kwh" binding:"required"`
	AutonomyPct           *float64 `json:"autonomy_pct,omitempty"`   // default: 100
	PeakSunHours          float64  `json:"peak_sun_hours,omitempty"` // default: looked up from city
	Connection            string   `json:"connection" binding:"required"`
	Category              string   `json:"category,omitempty"` // default: residential
	MaxBudget             float64  `json:"max_budget,omitempty"`
	Priority              string   `json:"priority,omitempty"` // default: cost
	RequiresBattery       bool     `json:"requires_battery,omitempty"`
	SpaceConstrained      bool     `json:"space_constrained,omitempty"`
	TariffPerKWh          float64  `json:"tariff_per_kwh,omitempty"` // default: settings
	ExchangeRate          float64  `json:"exchange_rate,omitempty"`  // default: settings
	IncludeNarrative      bool     `json:"include_narrative,omitempty"`
}

// QuoteRequest is the body of POST /api/v1/quotes.
type QuoteRequest struct {
	Customer string `json:"customer,omitempty"`
	ProjectRequest
}

// SettingsRequest is the body of PUT /api/v1/settings. A nil
// NarrativeAPIKey keeps the stored key; an empty string clears it.
type SettingsRequest struct {
	ExchangeRate    float64 `json:"exchange_rate" binding:"required,gt=0"`
	TariffPerKWh    float64 `json:"tariff_per_kwh" binding:"required,gt=0"`
	NarrativeAPIKey *string `json:"narrative_api_key,omitempty"`
}
