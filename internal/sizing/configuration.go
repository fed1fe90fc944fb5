package sizing

import "solar-sizer/internal/model"

// Configuration is a sized system. It is built once and never mutated.
type Configuration struct {
	PanelSizing
	Inverter         model.InverterModel
	Battery          *BatteryBank
	Connection       model.ConnectionType
	MonthlyEnergyKWh float64
}

// Assemble combines the sized parts into a Configuration. battery may be nil.
func Assemble(panels PanelSizing, inv model.InverterModel, battery *BatteryBank, conn model.ConnectionType, monthlyEnergyKWh float64) Configuration {
	var bank *BatteryBank
	if battery != nil {
		b := *battery
		bank = &b
	}
	return Configuration{
		PanelSizing:      panels,
		Inverter:         inv,
		Battery:          bank,
		Connection:       conn,
		MonthlyEnergyKWh: monthlyEnergyKWh,
	}
}
