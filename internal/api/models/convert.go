package models

import (
	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"
	"solar-sizer/internal/store"
)

func NewProjectSummary(in model.ProjectInput) ProjectSummary {
	return ProjectSummary{
		City:                  in.City,
		MonthlyConsumptionKWh: in.MonthlyConsumptionKWh,
		AutonomyPct:           in.AutonomyPct,
		PeakSunHours:          in.PeakSunHours,
		Connection:            in.Connection,
		Category:              in.Category,
		MaxBudget:             in.MaxBudget,
		Priority:              in.Priority,
		RequiresBattery:       in.RequiresBattery,
		SpaceConstrained:      in.SpaceConstrained,
		TariffPerKWh:          in.TariffPerKWh,
		ExchangeRate:          in.ExchangeRate,
	}
}

func NewConfigurationResponse(rc optimizer.RankedConfiguration) ConfigurationResponse {
	cfg := rc.Sized
	sys := SystemSummary{
		Panel:            cfg.Panel,
		PanelCount:       cfg.PanelCount,
		RealPowerKWp:     cfg.RealPowerKWp,
		AreaM2:           cfg.AreaM2,
		SpaceConstrained: cfg.SpaceConstrained,
		Inverter:         cfg.Inverter,
		Connection:       cfg.Connection,
		MonthlyEnergyKWh: cfg.MonthlyEnergyKWh,
	}
	if cfg.Inverter.PowerKW > 0 {
		sys.DCACRatio = cfg.RealPowerKWp / cfg.Inverter.PowerKW
	}
	if cfg.Battery != nil {
		sys.Battery = &BatterySummary{
			Battery:     cfg.Battery.Battery,
			Units:       cfg.Battery.Units,
			CapacityKWh: cfg.Battery.CapacityKWh(),
			RequiredKWh: cfg.Battery.RequiredKWh,
		}
	}

	p := rc.Projection
	return ConfigurationResponse{
		Strategy:    rc.Strategy,
		Label:       rc.Label,
		Description: rc.Description,
		Score:       rc.Score,
		System:      sys,
		Budget:      rc.Budget,
		Financials: FinancialSummary{
			Investment:           p.Investment,
			MonthlySavings:       p.MonthlySavings,
			AnnualSavings:        p.AnnualSavings,
			AnnualMaintenance:    p.AnnualMaintenance,
			PaybackYears:         p.PaybackRounded(),
			PaybackWithinHorizon: p.PaybackWithinHorizon,
			TotalSavings:         p.TotalSavings,
			NetGain:              p.NetGain,
			ROIPct:               p.ROIPct,
			NPV:                  p.NPV,
			IRRPct:               p.IRRPct,
			IRRConverged:         p.IRRConverged,
			Params:               p.Params,
		},
		Schedule: p.Abbreviated(),
	}
}

func NewConfigurationResponses(results []optimizer.RankedConfiguration) []ConfigurationResponse {
	out := make([]ConfigurationResponse, 0, len(results))
	for _, rc := range results {
		out = append(out, NewConfigurationResponse(rc))
	}
	return out
}

func NewSettingsResponse(s store.Settings) SettingsResponse {
	return SettingsResponse{
		ExchangeRate:       s.ExchangeRate,
		TariffPerKWh:       s.TariffPerKWh,
		HasNarrativeAPIKey: s.NarrativeAPIKey != "",
	}
}

func NewQuoteResponse(q store.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		Customer:       q.Customer,
		CreatedAt:      q.CreatedAt,
		Project:        NewProjectSummary(q.Input),
		Configurations: NewConfigurationResponses(q.Results),
	}
}

func NewQuoteSummaryResponse(q store.QuoteSummary) QuoteSummaryResponse {
	return QuoteSummaryResponse{
		ID:        q.ID,
		Customer:  q.Customer,
		City:      q.City,
		Priority:  q.Priority,
		BestTotal: q.BestTotal,
		CreatedAt: q.CreatedAt,
	}
}
