// Package projection simulates the year-by-year cash flow of a solar
// investment and derives payback, NPV and IRR from it.
package projection

import (
	"fmt"
	"math"

	"solar-sizer/internal/model"
)

// Params are the financial model rates. Rates are fractions per year.
type Params struct {
	MaintenanceRate       float64 `yaml:"maintenance_rate" json:"maintenance_rate"`
	DegradationRate       float64 `yaml:"degradation_rate" json:"degradation_rate"`
	EnergyInflationRate   float64 `yaml:"energy_inflation_rate" json:"energy_inflation_rate"`
	DiscountRate          float64 `yaml:"discount_rate" json:"discount_rate"`
	HorizonYears          int     `yaml:"horizon_years" json:"horizon_years"`
	MaintenanceEscalation float64 `yaml:"maintenance_escalation" json:"maintenance_escalation"`
	IRRTolerance          float64 `yaml:"irr_tolerance" json:"irr_tolerance"`
	IRRMaxIterations      int     `yaml:"irr_max_iterations" json:"irr_max_iterations"`
}

func DefaultParams() Params {
	return Params{
		MaintenanceRate:       0.01,
		DegradationRate:       0.005,
		EnergyInflationRate:   0.05,
		DiscountRate:          0.08,
		HorizonYears:          25,
		MaintenanceEscalation: 0.02,
		IRRTolerance:          1000,
		IRRMaxIterations:      100,
	}
}

// Merge overlays the non-zero fields of override onto p. Config files that
// need an explicit 0 go through config.Load, which decodes onto defaults.
func (p Params) Merge(override Params) Params {
	out := p
	if override.MaintenanceRate != 0 {
		out.MaintenanceRate = override.MaintenanceRate
	}
	if override.DegradationRate != 0 {
		out.DegradationRate = override.DegradationRate
	}
	if override.EnergyInflationRate != 0 {
		out.EnergyInflationRate = override.EnergyInflationRate
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if override.MaintenanceEscalation != 0 {
		out.MaintenanceEscalation = override.MaintenanceEscalation
	}
	if override.IRRTolerance != 0 {
		out.IRRTolerance = override.IRRTolerance
	}
	if override.IRRMaxIterations != 0 {
		out.IRRMaxIterations = override.IRRMaxIterations
	}
	return out
}

// Project runs the cash-flow simulation for an investment producing
// monthlyEnergyKWh in year 1, valued at tariff (currency/kWh) in year 1.
func Project(investment, monthlyEnergyKWh, tariff float64, p Params) (Projection, error) {
	if investment <= 0 {
		return Projection{}, fmt.Errorf("%w: investment must be > 0, got %v", model.ErrInvalidInput, investment)
	}
	if p.HorizonYears < 1 {
		return Projection{}, fmt.Errorf("%w: horizon must be >= 1 year, got %d", model.ErrInvalidInput, p.HorizonYears)
	}

	annualBaseEnergy := monthlyEnergyKWh * 12
	baseMaintenance := investment * p.MaintenanceRate

	flows := make([]CashFlowYear, 0, p.HorizonYears)
	cum := 0.0
	maintTotal := 0.0
	payback := 0.0
	paid := false
	npv := -investment

	for year := 1; year <= p.HorizonYears; year++ {
		n := float64(year - 1)
		energy := annualBaseEnergy * math.Pow(1-p.DegradationRate, n)
		yearTariff := tariff * math.Pow(1+p.EnergyInflationRate, n)
		gross := energy * yearTariff
		maint := baseMaintenance * math.Pow(1+p.MaintenanceEscalation, n)
		net := gross - maint

		prev := cum
		cum += net
		maintTotal += maint

		if !paid && cum >= investment {
			// Linear interpolation inside the crossing year.
			payback = n + (investment-prev)/net
			paid = true
		}

		npv += net / math.Pow(1+p.DiscountRate, float64(year))

		flows = append(flows, CashFlowYear{
			Year:                 year,
			EnergyKWh:            energy,
			TariffPerKWh:         yearTariff,
			GrossSavings:         gross,
			Maintenance:          maint,
			NetSavings:           net,
			CumulativeNetSavings: cum,
		})
	}
	if !paid {
		payback = float64(p.HorizonYears + 1)
	}

	res := Projection{
		Investment:           investment,
		MonthlySavings:       monthlyEnergyKWh * tariff,
		AnnualSavings:        monthlyEnergyKWh * tariff * 12,
		AnnualMaintenance:    baseMaintenance,
		CashFlows:            flows,
		PaybackYears:         payback,
		PaybackWithinHorizon: paid,
		TotalSavings:         cum,
		TotalMaintenance:     maintTotal,
		NetGain:              cum - investment,
		ROIPct:               (cum - investment) / investment * 100,
		NPV:                  npv,
		Params:               p,
	}
	irr := SolveIRR(investment, res.NetSavingsStream(), p.IRRTolerance, p.IRRMaxIterations)
	res.IRRPct = irr.Rate * 100
	res.IRRConverged = irr.Converged
	return res, nil
}

// NPVAt discounts flows (year 1 first) at rate and subtracts the investment.
func NPVAt(investment float64, flows []float64, rate float64) float64 {
	npv := -investment
	for i, f := range flows {
		npv += f / math.Pow(1+rate, float64(i+1))
	}
	return npv
}

// IRRResult is the outcome of the IRR search.
type IRRResult struct {
	Rate       float64
	NPV        float64
	Iterations int
	Converged  bool
}

// SolveIRR bisects [0, 1] for the rate where NPV is within tolerance of zero.
// Returns the last midpoint with Converged=false when the budget runs out;
// rates outside [0, 1] come back clamped toward the nearest bound.
func SolveIRR(investment float64, flows []float64, tolerance float64, maxIterations int) IRRResult {
	lo, hi := 0.0, 1.0
	res := IRRResult{}
	for i := 0; i < maxIterations; i++ {
		rate := (lo + hi) / 2
		npv := NPVAt(investment, flows, rate)
		res = IRRResult{Rate: rate, NPV: npv, Iterations: i + 1}
		if math.Abs(npv) < tolerance {
			res.Converged = true
			return res
		}
		// NPV falls as the rate rises for a conventional stream.
		if npv > 0 {
			lo = rate
		} else {
			hi = rate
		}
	}
	return res
}
