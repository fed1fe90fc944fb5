package budget

// CostModel holds the calibration constants of the installation budget.
// Amounts are local currency; percentages are 0..100.
type CostModel struct {
	StructureBase     float64 `yaml:"structure_base"`
	StructurePerPanel float64 `yaml:"structure_per_panel"`

	DCProtectionBase      float64 `yaml:"dc_protection_base"`
	DCProtectionPerString float64 `yaml:"dc_protection_per_string"`
	PanelsPerString       int     `yaml:"panels_per_string"`

	ACProtection float64 `yaml:"ac_protection"`
	Grounding    float64 `yaml:"grounding"`

	WiringBase     float64 `yaml:"wiring_base"`
	WiringPerPanel float64 `yaml:"wiring_per_panel"`

	LaborPerKWp    float64 `yaml:"labor_per_kwp"`
	LaborMinimum   float64 `yaml:"labor_minimum"`
	EngineeringPct float64 `yaml:"engineering_pct"`

	UtilityPermitting float64 `yaml:"utility_permitting"`
	Certification     float64 `yaml:"certification"`

	// UPME paperwork applies to systems above LargeSystemThresholdKWp.
	UPMEPaperwork           float64 `yaml:"upme_paperwork"`
	LargeSystemThresholdKWp float64 `yaml:"large_system_threshold_kwp"`

	ContingencyPct float64 `yaml:"contingency_pct"`
	MarginPct      float64 `yaml:"margin_pct"`
}

// DefaultCostModel returns 2026 Colombian market calibration values (COP).
func DefaultCostModel() CostModel {
	return CostModel{
		// Rails, anchors, unistrut and stainless hardware.
		StructureBase:     350000,
		StructurePerPanel: 125000,

		// Combiner boxes: surge protection, gPV fuses, disconnects.
		DCProtectionBase:      850000,
		DCProtectionPerString: 150000,
		PanelsPerString:       4,

		// Main board, breakers, class I/II surge devices.
		ACProtection: 450000,
		// Certified grounding kit.
		Grounding: 550000,

		// PV cable, MC4 connectors, conduit.
		WiringBase:     250000,
		WiringPerPanel: 120000,

		LaborPerKWp:    450000,
		LaborMinimum:   1200000,
		EngineeringPct: 12,

		UtilityPermitting: 800000,
		Certification:     1400000,

		UPMEPaperwork:           2500000,
		LargeSystemThresholdKWp: 100,

		ContingencyPct: 5,
		MarginPct:      30,
	}
}

// Merge overlays the non-zero fields of override onto m.
func (m CostModel) Merge(override CostModel) CostModel {
	out := m
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&out.StructureBase, override.StructureBase)
	set(&out.StructurePerPanel, override.StructurePerPanel)
	set(&out.DCProtectionBase, override.DCProtectionBase)
	set(&out.DCProtectionPerString, override.DCProtectionPerString)
	if override.PanelsPerString != 0 {
		out.PanelsPerString = override.PanelsPerString
	}
	set(&out.ACProtection, override.ACProtection)
	set(&out.Grounding, override.Grounding)
	set(&out.WiringBase, override.WiringBase)
	set(&out.WiringPerPanel, override.WiringPerPanel)
	set(&out.LaborPerKWp, override.LaborPerKWp)
	set(&out.LaborMinimum, override.LaborMinimum)
	set(&out.EngineeringPct, override.EngineeringPct)
	set(&out.UtilityPermitting, override.UtilityPermitting)
	set(&out.Certification, override.Certification)
	set(&out.UPMEPaperwork, override.UPMEPaperwork)
	set(&out.LargeSystemThresholdKWp, override.LargeSystemThresholdKWp)
	set(&out.ContingencyPct, override.ContingencyPct)
	set(&out.MarginPct, override.MarginPct)
	return out
}
