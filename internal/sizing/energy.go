// Package sizing turns consumption and location into array, inverter and
// battery bank sizes.
package sizing

import (
	"fmt"

	"solar-sizer/internal/model"
)

// DefaultSystemEfficiency is the performance ratio applied between array
// rating and delivered energy (wiring, soiling, temperature, inverter losses).
const DefaultSystemEfficiency = 0.80

// DaysPerMonth is the billing-month length used by every monthly conversion.
const DaysPerMonth = 30.0

// DailyEnergyRequired returns the kWh/day the array must deliver to cover
// autonomyPct percent of monthlyConsumption.
func DailyEnergyRequired(monthlyConsumption, autonomyPct float64) (float64, error) {
	if monthlyConsumption < 0 {
		return 0, fmt.Errorf("%w: monthly consumption must be >= 0, got %v", model.ErrInvalidInput, monthlyConsumption)
	}
	if autonomyPct <= 0 || autonomyPct > 100 {
		return 0, fmt.Errorf("%w: autonomy must be in (0, 100], got %v", model.ErrInvalidInput, autonomyPct)
	}
	return (monthlyConsumption / DaysPerMonth) * (autonomyPct / 100), nil
}

// PeakPowerRequired returns the array rating in kWp needed to deliver
// dailyEnergy kWh/day at the given peak sun hours.
func PeakPowerRequired(dailyEnergy, peakSunHours, systemEfficiency float64) (float64, error) {
	if peakSunHours <= 0 {
		return 0, fmt.Errorf("%w: peak sun hours must be > 0, got %v", model.ErrInvalidInput, peakSunHours)
	}
	if systemEfficiency <= 0 {
		return 0, fmt.Errorf("%w: system efficiency must be > 0, got %v", model.ErrInvalidInput, systemEfficiency)
	}
	return dailyEnergy / (peakSunHours * systemEfficiency), nil
}

// MonthlyEnergyOutput is the kWh/month an array of realPowerKWp produces in year 1.
func MonthlyEnergyOutput(realPowerKWp, peakSunHours, systemEfficiency float64) float64 {
	return realPowerKWp * peakSunHours * systemEfficiency * DaysPerMonth
}
