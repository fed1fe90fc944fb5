// Package strategy defines how each optimization criterion orders the
// catalog and scores the resulting configuration.
package strategy

import (
	"fmt"
	"sort"

	"solar-sizer/internal/budget"
	"solar-sizer/internal/model"
	"solar-sizer/internal/projection"
	"solar-sizer/internal/sizing"
)

// Outcome is a fully priced and projected configuration, the input to Score.
type Outcome struct {
	Config     sizing.Configuration
	Budget     budget.Budget
	Projection projection.Projection
}

// Strategy orders candidates for one optimization criterion. Ordering methods
// return new slices and leave their input untouched.
type Strategy interface {
	Priority() model.Priority
	Label() string
	Description() string
	OrderPanels(panels []model.PanelModel) []model.PanelModel
	InverterCandidates(conn model.ConnectionType, inverters []model.InverterModel) []model.InverterModel
	OrderBatteries(batteries []model.BatteryModel) []model.BatteryModel
	// Score is in [0, 100].
	Score(o Outcome) float64
}

// Params tunes ranking keys and scores.
type Params struct {
	// Quality panel key: -tier*TierWeight + efficiency + NTypeBonus.
	TierWeight float64 `yaml:"tier_weight"`
	NTypeBonus float64 `yaml:"ntype_bonus"`
	// PremiumInverterBrands restricts quality inverters when any of them fit.
	PremiumInverterBrands []string `yaml:"premium_inverter_brands"`

	// Cost score: 100 - costPerWp/CostPerWpDivisor.
	CostPerWpDivisor float64 `yaml:"cost_per_wp_divisor"`

	// Quality score: eff*PanelEfficiencyWeight + (invEff-InverterEfficiencyBaseline)
	// + cycles/BatteryCycleReference*BatteryCycleBonus.
	PanelEfficiencyWeight      float64 `yaml:"panel_efficiency_weight"`
	InverterEfficiencyBaseline float64 `yaml:"inverter_efficiency_baseline"`
	BatteryCycleReference      float64 `yaml:"battery_cycle_reference"`
	BatteryCycleBonus          float64 `yaml:"battery_cycle_bonus"`

	// Sustainability score: min(50, ROI/ROIDivisor) + max(0, 50 - payback*PaybackWeight).
	ROIDivisor    float64 `yaml:"roi_divisor"`
	PaybackWeight float64 `yaml:"payback_weight"`
}

func DefaultParams() Params {
	return Params{
		TierWeight:                 100,
		NTypeBonus:                 2,
		PremiumInverterBrands:      []string{"Fronius", "SMA"},
		CostPerWpDivisor:           50,
		PanelEfficiencyWeight:      4,
		InverterEfficiencyBaseline: 95,
		BatteryCycleReference:      6000,
		BatteryCycleBonus:          10,
		ROIDivisor:                 10,
		PaybackWeight:              5,
	}
}

// Merge overlays the non-zero fields of override onto p.
func (p Params) Merge(override Params) Params {
	out := p
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&out.TierWeight, override.TierWeight)
	set(&out.NTypeBonus, override.NTypeBonus)
	set(&out.CostPerWpDivisor, override.CostPerWpDivisor)
	set(&out.PanelEfficiencyWeight, override.PanelEfficiencyWeight)
	set(&out.InverterEfficiencyBaseline, override.InverterEfficiencyBaseline)
	set(&out.BatteryCycleReference, override.BatteryCycleReference)
	set(&out.BatteryCycleBonus, override.BatteryCycleBonus)
	set(&out.ROIDivisor, override.ROIDivisor)
	set(&out.PaybackWeight, override.PaybackWeight)
	if len(override.PremiumInverterBrands) > 0 {
		out.PremiumInverterBrands = append([]string(nil), override.PremiumInverterBrands...)
	}
	return out
}

// New returns the strategy for priority.
func New(priority model.Priority, p Params) (Strategy, error) {
	switch priority {
	case model.PriorityCost:
		return &CostStrategy{Params: p}, nil
	case model.PriorityQuality:
		return &QualityStrategy{Params: p}, nil
	case model.PrioritySustainability:
		return &SustainabilityStrategy{Params: p}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported strategy %q", model.ErrInvalidInput, priority)
	}
}

// All returns the three strategies in base order: cost, quality, sustainability.
func All(p Params) []Strategy {
	return []Strategy{
		&CostStrategy{Params: p},
		&QualityStrategy{Params: p},
		&SustainabilityStrategy{Params: p},
	}
}

// CompactFirst reorders panels by descending efficiency for constrained
// roofs. Panels of equal efficiency keep their relative order.
func CompactFirst(panels []model.PanelModel) []model.PanelModel {
	return sortedBy(panels, PanelEfficiencyKey, true)
}

// sortedBy returns a stably sorted copy of items ordered by key.
func sortedBy[T any](items []T, key func(T) float64, descending bool) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

func clampScore(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
