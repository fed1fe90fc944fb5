package strategy

import (
	"math"

	"solar-sizer/internal/model"
)

// SustainabilityStrategy balances cost and lifetime yield for the best return.
type SustainabilityStrategy struct {
	Params Params
}

func (s *SustainabilityStrategy) Priority() model.Priority { return model.PrioritySustainability }
func (s *SustainabilityStrategy) Label() string            { return "Sustainability optimized" }
func (s *SustainabilityStrategy) Description() string {
	return "Best return on investment with a balanced cost-benefit profile"
}

func (s *SustainabilityStrategy) OrderPanels(panels []model.PanelModel) []model.PanelModel {
	return sortedBy(panels, PanelValueKey, true)
}

func (s *SustainabilityStrategy) InverterCandidates(_ model.ConnectionType, inverters []model.InverterModel) []model.InverterModel {
	return sortedBy(inverters, InverterEfficiencyKey, true)
}

func (s *SustainabilityStrategy) OrderBatteries(batteries []model.BatteryModel) []model.BatteryModel {
	return sortedBy(batteries, BatteryCyclesPerCurrencyKey, true)
}

// Score gives up to 50 points for ROI and up to 50 for a fast payback.
func (s *SustainabilityStrategy) Score(o Outcome) float64 {
	roi := math.Min(50, o.Projection.ROIPct/s.Params.ROIDivisor)
	payback := math.Max(0, 50-o.Projection.PaybackRounded()*s.Params.PaybackWeight)
	return clampScore(roi + payback)
}
