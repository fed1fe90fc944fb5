package strategy

import (
	"strings"

	"solar-sizer/internal/model"
	"solar-sizer/internal/sizing"
)

// QualityStrategy maximizes efficiency and reliability.
type QualityStrategy struct {
	Params Params
}

func (s *QualityStrategy) Priority() model.Priority { return model.PriorityQuality }
func (s *QualityStrategy) Label() string            { return "Quality optimized" }
func (s *QualityStrategy) Description() string {
	return "Maximum efficiency with premium components and longer warranties"
}

func (s *QualityStrategy) OrderPanels(panels []model.PanelModel) []model.PanelModel {
	return sortedBy(panels, PanelQualityKey(s.Params), true)
}

// InverterCandidates keeps premium brands that fit the connection type, and
// falls back to the whole catalog when none do.
func (s *QualityStrategy) InverterCandidates(conn model.ConnectionType, inverters []model.InverterModel) []model.InverterModel {
	premium := make([]model.InverterModel, 0, len(inverters))
	for _, inv := range inverters {
		if s.isPremium(inv.Brand) {
			premium = append(premium, inv)
		}
	}
	if len(sizing.FilterInverters(conn, premium)) > 0 {
		return premium
	}
	return append([]model.InverterModel(nil), inverters...)
}

func (s *QualityStrategy) isPremium(brand string) bool {
	for _, b := range s.Params.PremiumInverterBrands {
		if strings.EqualFold(strings.TrimSpace(b), strings.TrimSpace(brand)) {
			return true
		}
	}
	return false
}

func (s *QualityStrategy) OrderBatteries(batteries []model.BatteryModel) []model.BatteryModel {
	return sortedBy(batteries, BatteryCycleLifeKey, true)
}

// Score weighs panel efficiency, then adds inverter efficiency and battery
// cycle-life bonuses.
func (s *QualityStrategy) Score(o Outcome) float64 {
	score := o.Config.Panel.EfficiencyPct * s.Params.PanelEfficiencyWeight
	score += o.Config.Inverter.EfficiencyPct - s.Params.InverterEfficiencyBaseline
	if o.Config.Battery != nil {
		score += o.Config.Battery.Battery.CycleLife / s.Params.BatteryCycleReference * s.Params.BatteryCycleBonus
	}
	return clampScore(score)
}
