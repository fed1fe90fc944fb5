package sizing

import (
	"fmt"
	"math"

	"solar-sizer/internal/model"
)

// BatteryParams controls how large the storage bank is.
type BatteryParams struct {
	AutonomyDays        float64
	DepthOfDischargePct float64
}

func DefaultBatteryParams() BatteryParams {
	return BatteryParams{
		AutonomyDays:        2,
		DepthOfDischargePct: 80,
	}
}

// BatteryCapacityRequired is the nominal kWh needed to ride through
// AutonomyDays of dailyEnergy without exceeding the depth of discharge.
func BatteryCapacityRequired(dailyEnergy float64, p BatteryParams) (float64, error) {
	if p.AutonomyDays <= 0 {
		return 0, fmt.Errorf("%w: autonomy days must be > 0, got %v", model.ErrInvalidInput, p.AutonomyDays)
	}
	if p.DepthOfDischargePct <= 0 || p.DepthOfDischargePct > 100 {
		return 0, fmt.Errorf("%w: depth of discharge must be in (0, 100], got %v", model.ErrInvalidInput, p.DepthOfDischargePct)
	}
	return dailyEnergy * p.AutonomyDays / (p.DepthOfDischargePct / 100), nil
}

// BatteryBank is a number of identical storage units.
type BatteryBank struct {
	Battery     model.BatteryModel
	Units       int
	RequiredKWh float64
}

func (b BatteryBank) CapacityKWh() float64 {
	return float64(b.Units) * b.Battery.CapacityKWh
}

func (b BatteryBank) Cost() float64 {
	return float64(b.Units) * b.Battery.Price
}

// SizeBattery builds a bank from the first candidate.
func SizeBattery(requiredKWh float64, candidates []model.BatteryModel) (BatteryBank, error) {
	if len(candidates) == 0 {
		return BatteryBank{}, fmt.Errorf("%w: empty battery list", model.ErrNoCandidates)
	}
	bat := candidates[0]
	if bat.CapacityKWh <= 0 {
		return BatteryBank{}, fmt.Errorf("%w: battery %q has non-positive capacity", model.ErrInvalidInput, bat.Model)
	}
	return BatteryBank{
		Battery:     bat,
		Units:       int(math.Ceil(requiredKWh / bat.CapacityKWh)),
		RequiredKWh: requiredKWh,
	}, nil
}
