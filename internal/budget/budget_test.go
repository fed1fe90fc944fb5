package budget

import (
	"testing"

	"solar-sizer/internal/model"
	"solar-sizer/internal/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridConfig(panelCount int, panelW, panelPrice, inverterPrice float64) sizing.Configuration {
	panel := model.PanelModel{Model: "P", PowerW: panelW, Price: panelPrice, AreaM2: 2.5}
	return sizing.Assemble(
		sizing.PanelSizing{
			Panel:        panel,
			PanelCount:   panelCount,
			RealPowerKWp: float64(panelCount) * panelW / 1000,
			PanelCost:    float64(panelCount) * panelPrice,
		},
		model.InverterModel{Model: "I", PowerKW: 3, Price: inverterPrice, Type: model.ConnectionGridTied},
		nil,
		model.ConnectionGridTied,
		0,
	)
}

func TestEstimate_ResidentialGridTied(t *testing.T) {
	b, err := Estimate(gridConfig(9, 550, 400000, 1950000), 4200, DefaultCostModel())
	require.NoError(t, err)

	assert.InDelta(t, 3600000, b.PanelCost, 1e-6)
	assert.InDelta(t, 1950000, b.InverterCost, 1e-6)
	assert.InDelta(t, 1475000, b.Structure, 1e-6)
	assert.Equal(t, 3, b.Strings)
	assert.InDelta(t, 1150000, b.DCProtection, 1e-6)
	assert.InDelta(t, 450000, b.ACProtection, 1e-6)
	assert.InDelta(t, 550000, b.Grounding, 1e-6)
	assert.InDelta(t, 1330000, b.Wiring, 1e-6)
	assert.InDelta(t, 2227500, b.Labor, 1e-6)
	assert.InDelta(t, 666000, b.Engineering, 1e-6)
	assert.InDelta(t, 800000, b.UtilityPermitting, 1e-6)
	assert.InDelta(t, 1400000, b.Certification, 1e-6)
	assert.Zero(t, b.UPMEPaperwork)
	assert.Zero(t, b.BatteryCost)
	assert.InDelta(t, 779925, b.Contingency, 1e-3)
	assert.InDelta(t, 4913527.5, b.CommercialMargin, 1e-3)
	assert.InDelta(t, 21291952.5, b.Total, 1e-3)
	assert.InDelta(t, 21291952.5/4950, b.CostPerWp, 1e-6)
}

func TestEstimate_TotalIsSumOfItems(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5, 9, 17, 64, 250} {
		b, err := Estimate(gridConfig(n, 545, 490000, 2730000), 4200, DefaultCostModel())
		require.NoError(t, err)

		sum := b.PanelCost +
			b.InverterCost +
			b.BatteryCost +
			b.Structure +
			b.DCProtection +
			b.ACProtection +
			b.Grounding +
			b.Wiring +
			b.Labor +
			b.Engineering +
			b.UtilityPermitting +
			b.Certification +
			b.UPMEPaperwork +
			b.Contingency +
			b.CommercialMargin
		assert.Equal(t, sum, b.Total, "panels=%d", n)
		assert.InDelta(t, b.Total/(float64(n)*545), b.CostPerWp, 1e-9)

		for name, v := range map[string]float64{
			"structure": b.Structure, "dc": b.DCProtection, "labor": b.Labor,
			"contingency": b.Contingency, "margin": b.CommercialMargin,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
		}
	}
}

func TestEstimate_LaborMinimumApplies(t *testing.T) {
	b, err := Estimate(gridConfig(2, 400, 300000, 1000000), 4200, DefaultCostModel())
	require.NoError(t, err)
	assert.InDelta(t, 1200000, b.Labor, 1e-6)
	// One string means no per-string surcharge.
	assert.Equal(t, 1, b.Strings)
	assert.InDelta(t, 850000, b.DCProtection, 1e-6)
}

func TestEstimate_LargeSystemPaperwork(t *testing.T) {
	small, err := Estimate(gridConfig(181, 550, 400000, 20000000), 4200, DefaultCostModel()) // 99.55 kWp
	require.NoError(t, err)
	assert.Zero(t, small.UPMEPaperwork)

	large, err := Estimate(gridConfig(200, 550, 400000, 20000000), 4200, DefaultCostModel()) // 110 kWp
	require.NoError(t, err)
	assert.InDelta(t, 2500000, large.UPMEPaperwork, 1e-6)
}

func TestEstimate_Battery(t *testing.T) {
	cfg := gridConfig(9, 550, 400000, 1950000)
	bank := sizing.BatteryBank{Battery: model.BatteryModel{CapacityKWh: 4.8, Price: 6000000}, Units: 3, RequiredKWh: 13}
	withBattery := sizing.Assemble(cfg.PanelSizing, cfg.Inverter, &bank, model.ConnectionHybrid, 0)

	b, err := Estimate(withBattery, 4200, DefaultCostModel())
	require.NoError(t, err)
	assert.InDelta(t, 18000000, b.BatteryCost, 1e-6)
	assert.Equal(t, 3, b.BatteryUnits)
	assert.Equal(t, b.ItemizedSum(), b.Total)

	without, err := Estimate(cfg, 4200, DefaultCostModel())
	require.NoError(t, err)
	assert.Greater(t, b.Total, without.Total)
}

func TestEstimate_ExchangeRateDoesNotAffectTotals(t *testing.T) {
	cfg := gridConfig(12, 550, 400000, 2730000)
	a, err := Estimate(cfg, 3900, DefaultCostModel())
	require.NoError(t, err)
	b, err := Estimate(cfg, 4800, DefaultCostModel())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEstimate_CustomCostModel(t *testing.T) {
	m := DefaultCostModel().Merge(CostModel{MarginPct: 20, PanelsPerString: 2})
	b, err := Estimate(gridConfig(9, 550, 400000, 1950000), 4200, m)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Strings)
	assert.InDelta(t, 850000+4*150000, b.DCProtection, 1e-6)
	assert.InDelta(t, (b.directSum()+b.Contingency)*0.20, b.CommercialMargin, 1e-6)
}

func TestEstimate_NoPower(t *testing.T) {
	_, err := Estimate(sizing.Configuration{}, 4200, DefaultCostModel())
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestCostModelMerge_KeepsDefaultsForZeroFields(t *testing.T) {
	m := DefaultCostModel().Merge(CostModel{Grounding: 600000})
	def := DefaultCostModel()
	assert.InDelta(t, 600000, m.Grounding, 1e-9)
	assert.Equal(t, def.StructureBase, m.StructureBase)
	assert.Equal(t, def.PanelsPerString, m.PanelsPerString)
	assert.Equal(t, def.MarginPct, m.MarginPct)
}
