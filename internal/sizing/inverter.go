package sizing

import (
	"fmt"
	"math"

	"solar-sizer/internal/model"
)

// DC/AC ratios. Grid-tied arrays are commonly oversized against the inverter
// AC rating; off-grid and hybrid systems are sized near 1:1.
const (
	GridTiedDCACRatio = 1.25
	DefaultDCACRatio  = 1.00
)

// DCACRatio returns the oversizing ratio for a connection type.
func DCACRatio(conn model.ConnectionType) float64 {
	if conn == model.ConnectionGridTied {
		return GridTiedDCACRatio
	}
	return DefaultDCACRatio
}

// RequiredACPower is the inverter rating in kW that matches dcPowerKW.
func RequiredACPower(dcPowerKW float64, conn model.ConnectionType) float64 {
	return dcPowerKW / DCACRatio(conn)
}

// FilterInverters keeps the inverters compatible with conn. Hybrid and
// grid-tied systems need a matching tag; off-grid accepts the whole list.
// The result is a new slice; input order is preserved.
func FilterInverters(conn model.ConnectionType, candidates []model.InverterModel) []model.InverterModel {
	out := make([]model.InverterModel, 0, len(candidates))
	for _, inv := range candidates {
		switch conn {
		case model.ConnectionHybrid, model.ConnectionGridTied:
			if inv.Type != conn {
				continue
			}
		}
		out = append(out, inv)
	}
	return out
}

// SelectInverter picks the compatible inverter whose rating is nearest to the
// required AC power. Ties go to the first candidate in list order.
func SelectInverter(dcPowerKW float64, conn model.ConnectionType, candidates []model.InverterModel) (model.InverterModel, error) {
	filtered := FilterInverters(conn, candidates)
	if len(filtered) == 0 {
		return model.InverterModel{}, fmt.Errorf("%w: no %s inverter in catalog", model.ErrNoCandidates, conn)
	}

	required := RequiredACPower(dcPowerKW, conn)
	best := filtered[0]
	bestDiff := math.Abs(best.PowerKW - required)
	for _, inv := range filtered[1:] {
		if d := math.Abs(inv.PowerKW - required); d < bestDiff {
			best, bestDiff = inv, d
		}
	}
	return best, nil
}
