package projection

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var scheduleHeader = []string{
	"year",
	"energy_kwh",
	"tariff_per_kwh",
	"gross_savings",
	"maintenance",
	"net_savings",
	"cumulative_net_savings",
}

// WriteScheduleCSV writes one row per cash-flow year.
func WriteScheduleCSV(w io.Writer, flows []CashFlowYear) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleHeader); err != nil {
		return err
	}
	for _, r := range flows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.EnergyKWh),
			fmtFloat(r.TariffPerKWh),
			fmtFloat(r.GrossSavings),
			fmtFloat(r.Maintenance),
			fmtFloat(r.NetSavings),
			fmtFloat(r.CumulativeNetSavings),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScheduleFile writes the schedule CSV to path.
func WriteScheduleFile(path string, flows []CashFlowYear) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteScheduleCSV(f, flows)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
