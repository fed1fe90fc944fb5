package model

// ProjectInput is everything the caller knows about one installation.
// Units:
// - MonthlyConsumptionKWh: kWh/month
// - AutonomyPct: (0, 100], share of consumption the array should cover
// - PeakSunHours: h/day (HSP)
// - MaxBudget: local currency, 0 means no limit
// - TariffPerKWh: local currency per kWh (year 1)
// - ExchangeRate: local currency per USD
type ProjectInput struct {
	City                  string
	MonthlyConsumptionKWh float64
	AutonomyPct           float64
	PeakSunHours          float64
	Connection            ConnectionType
	Category              InstallationCategory
	MaxBudget             float64
	Priority              Priority
	RequiresBattery       bool
	SpaceConstrained      bool
	TariffPerKWh          float64
	// ExchangeRate is carried for USD-denominated line items; no cost
	// formula reads it today.
	ExchangeRate float64
}
