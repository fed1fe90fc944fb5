package models

import (
	"time"

	"solar-sizer/internal/budget"
	"solar-sizer/internal/model"
	"solar-sizer/internal/projection"
)

// RankResponse is the reply of POST /api/v1/configurations.
type RankResponse struct {
	Project        ProjectSummary          `json:"project"`
	Configurations []ConfigurationResponse `json:"configurations"`
	Count          int                     `json:"count"`
	Cached         bool                    `json:"cached"`
}

// ProjectSummary echoes the resolved input, after defaults were applied.
type ProjectSummary struct {
	City                  string                     `json:"city,omitempty"`
	MonthlyConsumptionKWh float64                    `json:"monthly_consumption_kwh"`
	AutonomyPct           float64                    `json:"autonomy_pct"`
	PeakSunHours          float64                    `json:"peak_sun_hours"`
	Connection            model.ConnectionType       `json:"connection"`
	Category              model.InstallationCategory `json:"category"`
	MaxBudget             float64                    `json:"max_budget"`
	Priority              model.Priority             `json:"priority"`
	RequiresBattery       bool                       `json:"requires_battery"`
	SpaceConstrained      bool                       `json:"space_constrained"`
	TariffPerKWh          float64                    `json:"tariff_per_kwh"`
	ExchangeRate          float64                    `json:"exchange_rate"`
}

// ConfigurationResponse is one ranked configuration.
type ConfigurationResponse struct {
	Strategy    model.Priority            `json:"strategy"`
	Label       string                    `json:"label"`
	Description string                    `json:"description"`
	Score       float64                   `json:"score"`
	System      SystemSummary             `json:"system"`
	Budget      budget.Budget             `json:"budget"`
	Financials  FinancialSummary          `json:"financials"`
	Schedule    []projection.CashFlowYear `json:"schedule"` // years 1-10 and every 5th year after
	Narrative   string                    `json:"narrative,omitempty"`
}

type SystemSummary struct {
	Panel            model.PanelModel     `json:"panel"`
	PanelCount       int                  `json:"panel_count"`
	RealPowerKWp     float64              `json:"real_power_kwp"`
	AreaM2           float64              `json:"area_m2"`
	SpaceConstrained bool                 `json:"space_constrained"`
	Inverter         model.InverterModel  `json:"inverter"`
	DCACRatio        float64              `json:"dc_ac_ratio"`
	Battery          *BatterySummary      `json:"battery,omitempty"`
	Connection       model.ConnectionType `json:"connection"`
	MonthlyEnergyKWh float64              `json:"monthly_energy_kwh"`
}

type BatterySummary struct {
	Battery     model.BatteryModel `json:"battery"`
	Units       int                `json:"units"`
	CapacityKWh float64            `json:"capacity_kwh"`
	RequiredKWh float64            `json:"required_kwh"`
}

type FinancialSummary struct {
	Investment           float64           `json:"investment"`
	MonthlySavings       float64           `json:"monthly_savings"`
	AnnualSavings        float64           `json:"annual_savings"`
	AnnualMaintenance    float64           `json:"annual_maintenance"`
	PaybackYears         float64           `json:"payback_years"` // one decimal
	PaybackWithinHorizon bool              `json:"payback_within_horizon"`
	TotalSavings         float64           `json:"total_savings"`
	NetGain              float64           `json:"net_gain"`
	ROIPct               float64           `json:"roi_pct"`
	NPV                  float64           `json:"npv"`
	IRRPct               float64           `json:"irr_pct"`
	IRRConverged         bool              `json:"irr_converged"`
	Params               projection.Params `json:"params"`
}

// SettingsResponse never carries the API key itself.
type SettingsResponse struct {
	ExchangeRate       float64 `json:"exchange_rate"`
	TariffPerKWh       float64 `json:"tariff_per_kwh"`
	HasNarrativeAPIKey bool    `json:"has_narrative_api_key"`
}

type QuoteResponse struct {
	ID             string                  `json:"id"`
	Customer       string                  `json:"customer,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	Project        ProjectSummary          `json:"project"`
	Configurations []ConfigurationResponse `json:"configurations"`
}

type QuoteSummaryResponse struct {
	ID        string         `json:"id"`
	Customer  string         `json:"customer,omitempty"`
	City      string         `json:"city,omitempty"`
	Priority  model.Priority `json:"priority"`
	BestTotal float64        `json:"best_total"`
	CreatedAt time.Time      `json:"created_at"`
}

// LocationInfo is one entry of the HSP table.
type LocationInfo struct {
	City         string  `json:"city"`
	Department   string  `json:"department"`
	PeakSunHours float64 `json:"peak_sun_hours"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
