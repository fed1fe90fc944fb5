package strategy

import "solar-sizer/internal/model"

// Ranking keys. Each is a pure function of one catalog entry.

// PanelPricePerWattKey sorts ascending for the cheapest watt.
func PanelPricePerWattKey(p model.PanelModel) float64 {
	return p.PricePerWatt()
}

// PanelQualityKey ranks tier above raw efficiency, with a bonus for N-type
// and TOPCon cells. Higher is better.
func PanelQualityKey(params Params) func(model.PanelModel) float64 {
	return func(p model.PanelModel) float64 {
		k := -float64(p.Tier)*params.TierWeight + p.EfficiencyPct
		if p.IsNType() {
			k += params.NTypeBonus
		}
		return k
	}
}

// PanelValueKey is efficiency times warranty per unit price-per-watt.
// Higher is better.
func PanelValueKey(p model.PanelModel) float64 {
	return p.EfficiencyPct * p.WarrantyYears / p.PricePerWatt()
}

// PanelEfficiencyKey sorts descending for the smallest footprint per kWp.
func PanelEfficiencyKey(p model.PanelModel) float64 {
	return p.EfficiencyPct
}

func InverterEfficiencyKey(inv model.InverterModel) float64 {
	return inv.EfficiencyPct
}

func BatteryPricePerKWhKey(b model.BatteryModel) float64 {
	return b.PricePerKWh()
}

func BatteryCycleLifeKey(b model.BatteryModel) float64 {
	return b.CycleLife
}

func BatteryCyclesPerCurrencyKey(b model.BatteryModel) float64 {
	return b.CyclesPerCurrency()
}
