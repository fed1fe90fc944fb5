package model

import "strings"

// PanelModel is one photovoltaic module in the catalog.
// Units:
// - PowerW: W (STC rating)
// - EfficiencyPct: 0..100
// - Price: local currency per unit
// - AreaM2: m² footprint per module
// - Tier: 1 is the most bankable manufacturer class
type PanelModel struct {
	Model         string  `json:"model" yaml:"model"`
	Brand         string  `json:"brand" yaml:"brand"`
	PowerW        float64 `json:"power_w" yaml:"power_w"`
	EfficiencyPct float64 `json:"efficiency_pct" yaml:"efficiency_pct"`
	Price         float64 `json:"price" yaml:"price"`
	Technology    string  `json:"technology" yaml:"technology"`
	AreaM2        float64 `json:"area_m2" yaml:"area_m2"`
	Tier          int     `json:"tier" yaml:"tier"`
	WarrantyYears float64 `json:"warranty_years" yaml:"warranty_years"`
}

func (p PanelModel) PricePerWatt() float64 {
	return p.Price / p.PowerW
}

// IsNType reports whether the technology label names an N-type or TOPCon cell.
func (p PanelModel) IsNType() bool {
	t := strings.ToLower(p.Technology)
	return strings.Contains(t, "n-type") || strings.Contains(t, "topcon")
}

// InverterModel is one inverter in the catalog. Type is the connection type
// the inverter is built for.
type InverterModel struct {
	Model         string         `json:"model" yaml:"model"`
	Brand         string         `json:"brand" yaml:"brand"`
	PowerKW       float64        `json:"power_kw" yaml:"power_kw"`
	EfficiencyPct float64        `json:"efficiency_pct" yaml:"efficiency_pct"`
	Price         float64        `json:"price" yaml:"price"`
	Type          ConnectionType `json:"type" yaml:"type"`
	MPPTs         int            `json:"mppts" yaml:"mppts"`
	WarrantyYears float64        `json:"warranty_years" yaml:"warranty_years"`
}

// BatteryModel is one storage unit in the catalog. CapacityKWh is usable capacity.
type BatteryModel struct {
	Model       string  `json:"model" yaml:"model"`
	Brand       string  `json:"brand" yaml:"brand"`
	CapacityKWh float64 `json:"capacity_kwh" yaml:"capacity_kwh"`
	Price       float64 `json:"price" yaml:"price"`
	CycleLife   float64 `json:"cycle_life" yaml:"cycle_life"`
	Chemistry   string  `json:"chemistry" yaml:"chemistry"`
}

func (b BatteryModel) PricePerKWh() float64 {
	return b.Price / b.CapacityKWh
}

// CyclesPerCurrency is cycle life per unit of price-per-kWh.
func (b BatteryModel) CyclesPerCurrency() float64 {
	return b.CycleLife / b.PricePerKWh()
}

// Catalog bundles the equipment reference tables. The engine treats it as
// read-only and never reorders the slices it is given.
type Catalog struct {
	Panels    []PanelModel    `json:"panels" yaml:"panels"`
	Inverters []InverterModel `json:"inverters" yaml:"inverters"`
	Batteries []BatteryModel  `json:"batteries" yaml:"batteries"`
}
