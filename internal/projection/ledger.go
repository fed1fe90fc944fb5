package projection

import "math"

// CashFlowYear is one row of the year-by-year projection.
type CashFlowYear struct {
	Year                 int     `json:"year"`
	EnergyKWh            float64 `json:"energy_kwh"`
	TariffPerKWh         float64 `json:"tariff_per_kwh"`
	GrossSavings         float64 `json:"gross_savings"`
	Maintenance          float64 `json:"maintenance"`
	NetSavings           float64 `json:"net_savings"`
	CumulativeNetSavings float64 `json:"cumulative_net_savings"`
}

// Projection is the financial outcome of one investment over the horizon.
type Projection struct {
	Investment float64

	// Year 1
	MonthlySavings    float64
	AnnualSavings     float64
	AnnualMaintenance float64

	CashFlows []CashFlowYear

	// PaybackYears is the interpolated crossing point, or HorizonYears+1
	// when cumulative savings never reach the investment.
	PaybackYears         float64
	PaybackWithinHorizon bool

	TotalSavings     float64
	TotalMaintenance float64
	NetGain          float64
	ROIPct           float64
	NPV              float64

	// IRRPct is only a best estimate when IRRConverged is false.
	IRRPct       float64
	IRRConverged bool

	Params Params
}

// PaybackRounded is the payback period rounded to one decimal for display.
func (p Projection) PaybackRounded() float64 {
	return math.Round(p.PaybackYears*10) / 10
}

// Abbreviated returns years 1-10 and every fifth year after that.
func (p Projection) Abbreviated() []CashFlowYear {
	out := make([]CashFlowYear, 0, 13)
	for _, cf := range p.CashFlows {
		if cf.Year <= 10 || cf.Year%5 == 0 {
			out = append(out, cf)
		}
	}
	return out
}

// CumulativeAt returns cumulative net savings at fractional year t, assuming
// savings accrue linearly within each year.
func (p Projection) CumulativeAt(t float64) float64 {
	if t <= 0 || len(p.CashFlows) == 0 {
		return 0
	}
	prev := 0.0
	for _, cf := range p.CashFlows {
		start := float64(cf.Year - 1)
		if t <= float64(cf.Year) {
			return prev + (t-start)*cf.NetSavings
		}
		prev = cf.CumulativeNetSavings
	}
	return prev
}

// NetSavingsStream is the per-year net savings, in year order.
func (p Projection) NetSavingsStream() []float64 {
	out := make([]float64, len(p.CashFlows))
	for i, cf := range p.CashFlows {
		out[i] = cf.NetSavings
	}
	return out
}
