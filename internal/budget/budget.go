// Package budget prices a sized configuration as a turnkey installation.
package budget

import (
	"fmt"
	"math"

	"solar-sizer/internal/model"
	"solar-sizer/internal/sizing"
)

// Budget is the itemized turnkey cost of one configuration.
type Budget struct {
	// Equipment
	PanelCost    float64 `json:"panel_cost"`
	InverterCost float64 `json:"inverter_cost"`
	BatteryCost  float64 `json:"battery_cost"`

	// Balance of system
	Structure    float64 `json:"structure"`
	DCProtection float64 `json:"dc_protection"`
	ACProtection float64 `json:"ac_protection"`
	Grounding    float64 `json:"grounding"`
	Wiring       float64 `json:"wiring"`

	// Services
	Labor             float64 `json:"labor"`
	Engineering       float64 `json:"engineering"`
	UtilityPermitting float64 `json:"utility_permitting"`
	Certification     float64 `json:"certification"`
	UPMEPaperwork     float64 `json:"upme_paperwork"`

	// Indirect
	Contingency      float64 `json:"contingency"`
	CommercialMargin float64 `json:"commercial_margin"`

	Total     float64 `json:"total"`
	CostPerWp float64 `json:"cost_per_wp"`

	Strings      int `json:"strings"`
	BatteryUnits int `json:"battery_units"`
}

// ItemizedSum re-adds every itemized currency field. Total always equals it.
func (b Budget) ItemizedSum() float64 {
	return b.directSum() + b.Contingency + b.CommercialMargin
}

func (b Budget) directSum() float64 {
	return b.PanelCost +
		b.InverterCost +
		b.BatteryCost +
		b.Structure +
		b.DCProtection +
		b.ACProtection +
		b.Grounding +
		b.Wiring +
		b.Labor +
		b.Engineering +
		b.UtilityPermitting +
		b.Certification +
		b.UPMEPaperwork
}

// StringCount is the number of series strings for panelCount modules.
func StringCount(panelCount, panelsPerString int) int {
	if panelsPerString <= 0 {
		panelsPerString = 1
	}
	return int(math.Ceil(float64(panelCount) / float64(panelsPerString)))
}

// Estimate itemizes the cost of cfg under m.
//
// exchangeRate (local currency per USD) is accepted for USD-denominated line
// items; no current line item uses it.
func Estimate(cfg sizing.Configuration, exchangeRate float64, m CostModel) (Budget, error) {
	_ = exchangeRate
	if cfg.RealPowerKWp <= 0 {
		return Budget{}, fmt.Errorf("%w: configuration has no installed power", model.ErrInvalidInput)
	}

	panels := float64(cfg.PanelCount)
	nStrings := StringCount(cfg.PanelCount, m.PanelsPerString)

	b := Budget{
		PanelCost:    cfg.PanelCost,
		InverterCost: cfg.Inverter.Price,

		Structure:    m.StructureBase + m.StructurePerPanel*panels,
		DCProtection: m.DCProtectionBase + m.DCProtectionPerString*float64(max(0, nStrings-1)),
		ACProtection: m.ACProtection,
		Grounding:    m.Grounding,
		Wiring:       m.WiringBase + m.WiringPerPanel*panels,

		Labor:             math.Max(m.LaborPerKWp*cfg.RealPowerKWp, m.LaborMinimum),
		Engineering:       (cfg.PanelCost + cfg.Inverter.Price) * m.EngineeringPct / 100,
		UtilityPermitting: m.UtilityPermitting,
		Certification:     m.Certification,

		Strings: nStrings,
	}
	if cfg.RealPowerKWp > m.LargeSystemThresholdKWp {
		b.UPMEPaperwork = m.UPMEPaperwork
	}
	if cfg.Battery != nil {
		b.BatteryCost = cfg.Battery.Cost()
		b.BatteryUnits = cfg.Battery.Units
	}

	subtotal := b.directSum()
	b.Contingency = subtotal * m.ContingencyPct / 100
	b.CommercialMargin = (subtotal + b.Contingency) * m.MarginPct / 100

	b.Total = b.ItemizedSum()
	b.CostPerWp = b.Total / (cfg.RealPowerKWp * 1000)
	return b, nil
}
