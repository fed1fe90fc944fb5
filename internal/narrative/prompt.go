package narrative

import (
	"fmt"
	"strings"

	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"
)

// BuildPrompt renders a ranked configuration into an executive-summary
// request. Only numbers the engine computed are included.
func BuildPrompt(in model.ProjectInput, rc optimizer.RankedConfiguration) string {
	cfg := rc.Sized
	city := in.City
	if city == "" {
		city = "Colombia"
	}

	var b strings.Builder
	b.WriteString("You are a solar energy advisor presenting a project to an end customer in Colombia.\n")
	b.WriteString("Write an executive summary of at most 300 words using only the figures below.\n\n")

	b.WriteString("PROJECT\n")
	fmt.Fprintf(&b, "- Location: %s (peak sun hours %.1f h/day)\n", city, in.PeakSunHours)
	fmt.Fprintf(&b, "- Installation: %s, %s connection\n", in.Category, cfg.Connection)
	fmt.Fprintf(&b, "- Monthly consumption: %.0f kWh, target coverage %.0f%%\n", in.MonthlyConsumptionKWh, in.AutonomyPct)
	if in.MaxBudget > 0 {
		fmt.Fprintf(&b, "- Budget limit: %.0f COP\n", in.MaxBudget)
	}

	fmt.Fprintf(&b, "\nCONFIGURATION (%s)\n", rc.Label)
	fmt.Fprintf(&b, "- System size: %.2f kWp\n", cfg.RealPowerKWp)
	fmt.Fprintf(&b, "- Panels: %d x %s %s (%.0f W, %.1f%% efficiency)\n",
		cfg.PanelCount, cfg.Panel.Brand, cfg.Panel.Model, cfg.Panel.PowerW, cfg.Panel.EfficiencyPct)
	fmt.Fprintf(&b, "- Inverter: %s %s (%.1f kW, %.1f%% efficiency)\n",
		cfg.Inverter.Brand, cfg.Inverter.Model, cfg.Inverter.PowerKW, cfg.Inverter.EfficiencyPct)
	if cfg.Battery != nil {
		fmt.Fprintf(&b, "- Storage: %d x %s (%.1f kWh total)\n",
			cfg.Battery.Units, cfg.Battery.Battery.Model, cfg.Battery.CapacityKWh())
	}
	if cfg.AreaM2 > 0 {
		fmt.Fprintf(&b, "- Roof area: %.1f m2\n", cfg.AreaM2)
	}
	fmt.Fprintf(&b, "- Estimated production: %.0f kWh/month\n", cfg.MonthlyEnergyKWh)

	p := rc.Projection
	b.WriteString("\nFINANCIALS\n")
	fmt.Fprintf(&b, "- Total investment: %.0f COP (%.0f COP/Wp)\n", rc.Budget.Total, rc.Budget.CostPerWp)
	fmt.Fprintf(&b, "- Monthly savings, year 1: %.0f COP\n", p.MonthlySavings)
	if p.PaybackWithinHorizon {
		fmt.Fprintf(&b, "- Payback: %.1f years\n", p.PaybackRounded())
	} else {
		fmt.Fprintf(&b, "- Payback: beyond %d years\n", p.Params.HorizonYears)
	}
	fmt.Fprintf(&b, "- %d-year ROI: %.0f%%, NPV: %.0f COP\n", p.Params.HorizonYears, p.ROIPct, p.NPV)
	if p.IRRConverged {
		fmt.Fprintf(&b, "- IRR: %.1f%%\n", p.IRRPct)
	}

	b.WriteString("\nUse sections: summary, key benefits, financial outlook, recommendation.\n")
	b.WriteString("Plain professional language, concrete numbers, no markdown.\n")
	return b.String()
}
