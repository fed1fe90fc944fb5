package optimizer

import (
	"solar-sizer/internal/budget"
	"solar-sizer/internal/projection"
	"solar-sizer/internal/sizing"
	"solar-sizer/internal/strategy"
)

// Params is everything Rank needs besides the project and the catalog.
// Nothing in the engine reads configuration from anywhere else.
type Params struct {
	SystemEfficiency float64
	Battery          sizing.BatteryParams
	Cost             budget.CostModel
	Finance          projection.Params
	Strategy         strategy.Params
}

// DefaultParams returns the calibration shipped with the engine:
// 80% system efficiency, 2 days of storage at 80% depth of discharge, the
// default COP cost model, 25-year finance at 8% discount and the default
// scoring weights.
func DefaultParams() Params {
	return Params{
		SystemEfficiency: sizing.DefaultSystemEfficiency,
		Battery:          sizing.DefaultBatteryParams(),
		Cost:             budget.DefaultCostModel(),
		Finance:          projection.DefaultParams(),
		Strategy:         strategy.DefaultParams(),
	}
}
