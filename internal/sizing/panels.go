package sizing

import (
	"fmt"
	"math"

	"solar-sizer/internal/model"
)

// PanelSizing is the array built from a single panel model.
type PanelSizing struct {
	Panel        model.PanelModel
	PanelCount   int
	RealPowerKWp float64
	AreaM2       float64
	PanelCost    float64
	// SpaceConstrained records the flag; the caller orders candidates for it.
	SpaceConstrained bool
}

// CostPerWp is the module cost per installed watt.
func (s PanelSizing) CostPerWp() float64 {
	return s.PanelCost / (s.RealPowerKWp * 1000)
}

// SizePanels sizes the array with the first candidate. The order of
// candidates is the caller's ranking; alternatives are not evaluated.
func SizePanels(targetKWp float64, candidates []model.PanelModel, spaceConstrained bool) (PanelSizing, error) {
	if targetKWp <= 0 {
		return PanelSizing{}, fmt.Errorf("%w: target power must be > 0, got %v kWp", model.ErrInvalidInput, targetKWp)
	}
	if len(candidates) == 0 {
		return PanelSizing{}, fmt.Errorf("%w: empty panel list", model.ErrNoCandidates)
	}
	panel := candidates[0]
	if panel.PowerW <= 0 {
		return PanelSizing{}, fmt.Errorf("%w: panel %q has non-positive rating", model.ErrInvalidInput, panel.Model)
	}

	count := int(math.Ceil(targetKWp * 1000 / panel.PowerW))
	return PanelSizing{
		Panel:            panel,
		PanelCount:       count,
		RealPowerKWp:     float64(count) * panel.PowerW / 1000,
		AreaM2:           float64(count) * panel.AreaM2,
		PanelCost:        float64(count) * panel.Price,
		SpaceConstrained: spaceConstrained,
	}, nil
}
