// Package optimizer runs the sizing, pricing and projection pipeline once per
// strategy and orders the results by the customer's priority.
package optimizer

import (
	"fmt"

	"solar-sizer/internal/budget"
	"solar-sizer/internal/model"
	"solar-sizer/internal/projection"
	"solar-sizer/internal/sizing"
	"solar-sizer/internal/strategy"
)

// RankedConfiguration is one strategy's priced and projected system.
type RankedConfiguration struct {
	Strategy    model.Priority
	Label       string
	Description string
	Sized       sizing.Configuration
	Budget      budget.Budget
	Projection  projection.Projection
	Score       float64
}

// Rank builds one configuration per strategy, drops those above
// input.MaxBudget and returns the rest with the priority's strategy first.
// An empty result is not an error.
func Rank(input model.ProjectInput, catalog model.Catalog, p Params) ([]RankedConfiguration, error) {
	in, err := normalize(input)
	if err != nil {
		return nil, err
	}
	daily, err := sizing.DailyEnergyRequired(in.MonthlyConsumptionKWh, in.AutonomyPct)
	if err != nil {
		return nil, err
	}
	target, err := sizing.PeakPowerRequired(daily, in.PeakSunHours, p.SystemEfficiency)
	if err != nil {
		return nil, err
	}

	byPriority := make(map[model.Priority]RankedConfiguration, 3)
	for _, s := range strategy.All(p.Strategy) {
		rc, err := evaluate(s, in, catalog, p, daily, target)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Priority(), err)
		}
		byPriority[s.Priority()] = rc
	}

	out := make([]RankedConfiguration, 0, len(byPriority))
	for _, pr := range Order(in.Priority) {
		rc := byPriority[pr]
		if in.MaxBudget > 0 && rc.Budget.Total > in.MaxBudget {
			continue
		}
		out = append(out, rc)
	}
	return out, nil
}

// Order returns the strategy order for a priority. The chosen strategy swaps
// places with cost, so quality gives quality, cost, sustainability and
// sustainability gives sustainability, quality, cost.
func Order(priority model.Priority) []model.Priority {
	base := []model.Priority{model.PriorityCost, model.PriorityQuality, model.PrioritySustainability}
	for i, pr := range base {
		if pr == priority {
			base[0], base[i] = base[i], base[0]
			break
		}
	}
	return base
}

func normalize(in model.ProjectInput) (model.ProjectInput, error) {
	conn, err := model.ParseConnectionType(string(in.Connection))
	if err != nil {
		return in, err
	}
	in.Connection = conn
	if in.Priority, err = model.ParsePriority(string(in.Priority)); err != nil {
		return in, err
	}
	if in.Category, err = model.ParseInstallationCategory(string(in.Category)); err != nil {
		return in, err
	}
	if in.TariffPerKWh < 0 {
		return in, fmt.Errorf("%w: tariff must be >= 0, got %v", model.ErrInvalidInput, in.TariffPerKWh)
	}
	if in.MaxBudget < 0 {
		return in, fmt.Errorf("%w: max budget must be >= 0, got %v", model.ErrInvalidInput, in.MaxBudget)
	}
	return in, nil
}

func evaluate(s strategy.Strategy, in model.ProjectInput, catalog model.Catalog, p Params, daily, target float64) (RankedConfiguration, error) {
	candidates := s.OrderPanels(catalog.Panels)
	if in.SpaceConstrained {
		candidates = strategy.CompactFirst(candidates)
	}
	panels, err := sizing.SizePanels(target, candidates, in.SpaceConstrained)
	if err != nil {
		return RankedConfiguration{}, err
	}
	inv, err := sizing.SelectInverter(panels.RealPowerKWp, in.Connection, s.InverterCandidates(in.Connection, catalog.Inverters))
	if err != nil {
		return RankedConfiguration{}, err
	}

	var bank *sizing.BatteryBank
	if in.RequiresBattery {
		required, err := sizing.BatteryCapacityRequired(daily, p.Battery)
		if err != nil {
			return RankedConfiguration{}, err
		}
		b, err := sizing.SizeBattery(required, s.OrderBatteries(catalog.Batteries))
		if err != nil {
			return RankedConfiguration{}, err
		}
		bank = &b
	}

	monthly := sizing.MonthlyEnergyOutput(panels.RealPowerKWp, in.PeakSunHours, p.SystemEfficiency)
	cfg := sizing.Assemble(panels, inv, bank, in.Connection, monthly)

	b, err := budget.Estimate(cfg, in.ExchangeRate, p.Cost)
	if err != nil {
		return RankedConfiguration{}, err
	}
	proj, err := projection.Project(b.Total, monthly, in.TariffPerKWh, p.Finance)
	if err != nil {
		return RankedConfiguration{}, err
	}

	return RankedConfiguration{
		Strategy:    s.Priority(),
		Label:       s.Label(),
		Description: s.Description(),
		Sized:       cfg,
		Budget:      b,
		Projection:  proj,
		Score:       s.Score(strategy.Outcome{Config: cfg, Budget: b, Projection: proj}),
	}, nil
}
