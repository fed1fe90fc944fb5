package strategy

import "solar-sizer/internal/model"

// CostStrategy minimizes upfront investment.
type CostStrategy struct {
	Params Params
}

func (s *CostStrategy) Priority() model.Priority { return model.PriorityCost }
func (s *CostStrategy) Label() string            { return "Cost optimized" }
func (s *CostStrategy) Description() string {
	return "Minimizes upfront investment with dependable economy components"
}

func (s *CostStrategy) OrderPanels(panels []model.PanelModel) []model.PanelModel {
	return sortedBy(panels, PanelPricePerWattKey, false)
}

func (s *CostStrategy) InverterCandidates(_ model.ConnectionType, inverters []model.InverterModel) []model.InverterModel {
	return append([]model.InverterModel(nil), inverters...)
}

func (s *CostStrategy) OrderBatteries(batteries []model.BatteryModel) []model.BatteryModel {
	return sortedBy(batteries, BatteryPricePerKWhKey, false)
}

// Score falls as cost per Wp rises.
func (s *CostStrategy) Score(o Outcome) float64 {
	return clampScore(100 - o.Budget.CostPerWp/s.Params.CostPerWpDivisor)
}
