package sizing

import (
	"testing"

	"solar-sizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyEnergyRequired(t *testing.T) {
	got, err := DailyEnergyRequired(500, 100)
	require.NoError(t, err)
	assert.InDelta(t, 16.667, got, 0.001)

	got, err = DailyEnergyRequired(600, 50)
	require.NoError(t, err)
	assert.InDelta(t, 10, got, 1e-9)

	got, err = DailyEnergyRequired(0, 100)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDailyEnergyRequired_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		monthly  float64
		autonomy float64
	}{
		{"negative consumption", -1, 100},
		{"zero autonomy", 500, 0},
		{"negative autonomy", 500, -10},
		{"autonomy over 100", 500, 100.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DailyEnergyRequired(tc.monthly, tc.autonomy)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestPeakPowerRequired(t *testing.T) {
	daily, err := DailyEnergyRequired(500, 100)
	require.NoError(t, err)
	got, err := PeakPowerRequired(daily, 4.5, DefaultSystemEfficiency)
	require.NoError(t, err)
	assert.InDelta(t, 4.63, got, 0.005)

	_, err = PeakPowerRequired(daily, 0, DefaultSystemEfficiency)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = PeakPowerRequired(daily, 4.5, 0)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPeakPowerRequired_MonotonicInConsumption(t *testing.T) {
	prev := -1.0
	for consumption := 0.0; consumption <= 5000; consumption += 125 {
		daily, err := DailyEnergyRequired(consumption, 80)
		require.NoError(t, err)
		kwp, err := PeakPowerRequired(daily, 4.2, DefaultSystemEfficiency)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, kwp, prev, "consumption %v", consumption)
		prev = kwp
	}
}

func TestSizePanels_FirstCandidateWins(t *testing.T) {
	panels := []model.PanelModel{
		{Model: "P550", PowerW: 550, Price: 400000, AreaM2: 2.5},
		{Model: "P410", PowerW: 410, Price: 310000, AreaM2: 2.0},
	}
	s, err := SizePanels(4.63, panels, true)
	require.NoError(t, err)

	assert.Equal(t, "P550", s.Panel.Model)
	assert.Equal(t, 9, s.PanelCount)
	assert.InDelta(t, 4.95, s.RealPowerKWp, 1e-9)
	assert.InDelta(t, 22.5, s.AreaM2, 1e-9)
	assert.InDelta(t, 3600000, s.PanelCost, 1e-6)
	assert.True(t, s.SpaceConstrained)
	assert.GreaterOrEqual(t, s.RealPowerKWp, 4.63)
}

func TestSizePanels_Errors(t *testing.T) {
	panels := []model.PanelModel{{Model: "P", PowerW: 500, Price: 1}}

	_, err := SizePanels(0, panels, false)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = SizePanels(-2, panels, false)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = SizePanels(3, nil, false)
	assert.ErrorIs(t, err, model.ErrNoCandidates)
}

var testInverters = []model.InverterModel{
	{Model: "G5", PowerKW: 5, Type: model.ConnectionGridTied},
	{Model: "G8", PowerKW: 8, Type: model.ConnectionGridTied},
	{Model: "G3", PowerKW: 3, Type: model.ConnectionGridTied},
	{Model: "H5", PowerKW: 5, Type: model.ConnectionHybrid},
	{Model: "H8", PowerKW: 8, Type: model.ConnectionHybrid},
	{Model: "O4", PowerKW: 4, Type: model.ConnectionOffGrid},
}

func TestRequiredACPower(t *testing.T) {
	assert.InDelta(t, 4, RequiredACPower(5, model.ConnectionGridTied), 1e-9)
	assert.InDelta(t, 5, RequiredACPower(5, model.ConnectionHybrid), 1e-9)
	assert.InDelta(t, 5, RequiredACPower(5, model.ConnectionOffGrid), 1e-9)
}

func TestSelectInverter_NearestCompatible(t *testing.T) {
	// 4.95 kWp DC grid-tied -> 3.96 kW AC; 3 kW is 0.96 away, 5 kW is 1.04 away.
	inv, err := SelectInverter(4.95, model.ConnectionGridTied, testInverters)
	require.NoError(t, err)
	assert.Equal(t, "G3", inv.Model)

	inv, err = SelectInverter(7, model.ConnectionHybrid, testInverters)
	require.NoError(t, err)
	assert.Equal(t, "H8", inv.Model)

	// Off-grid sees the whole list; 4 kW off-grid unit is an exact match.
	inv, err = SelectInverter(4, model.ConnectionOffGrid, testInverters)
	require.NoError(t, err)
	assert.Equal(t, "O4", inv.Model)
}

func TestSelectInverter_MinimizesDistanceOverFilteredSet(t *testing.T) {
	for _, conn := range []model.ConnectionType{model.ConnectionGridTied, model.ConnectionHybrid, model.ConnectionOffGrid} {
		for dc := 0.5; dc <= 12; dc += 0.35 {
			inv, err := SelectInverter(dc, conn, testInverters)
			require.NoError(t, err)

			filtered := FilterInverters(conn, testInverters)
			assert.Contains(t, filtered, inv)

			required := RequiredACPower(dc, conn)
			for _, other := range filtered {
				assert.LessOrEqual(t, abs(inv.PowerKW-required), abs(other.PowerKW-required))
			}
			if conn != model.ConnectionOffGrid {
				assert.Equal(t, conn, inv.Type)
			}
		}
	}
}

func TestSelectInverter_TieGoesToFirst(t *testing.T) {
	candidates := []model.InverterModel{
		{Model: "A", PowerKW: 4, Type: model.ConnectionHybrid},
		{Model: "B", PowerKW: 6, Type: model.ConnectionHybrid},
		{Model: "C", PowerKW: 4, Type: model.ConnectionHybrid},
	}
	inv, err := SelectInverter(5, model.ConnectionHybrid, candidates)
	require.NoError(t, err)
	assert.Equal(t, "A", inv.Model)
}

func TestSelectInverter_NoCandidates(t *testing.T) {
	onlyGrid := []model.InverterModel{{Model: "G5", PowerKW: 5, Type: model.ConnectionGridTied}}
	_, err := SelectInverter(5, model.ConnectionHybrid, onlyGrid)
	assert.ErrorIs(t, err, model.ErrNoCandidates)

	_, err = SelectInverter(5, model.ConnectionOffGrid, nil)
	assert.ErrorIs(t, err, model.ErrNoCandidates)
}

func TestBatteryCapacityRequired(t *testing.T) {
	got, err := BatteryCapacityRequired(10, DefaultBatteryParams())
	require.NoError(t, err)
	assert.InDelta(t, 25, got, 1e-9)

	_, err = BatteryCapacityRequired(10, BatteryParams{AutonomyDays: 2, DepthOfDischargePct: 0})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = BatteryCapacityRequired(10, BatteryParams{AutonomyDays: 0, DepthOfDischargePct: 80})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestSizeBattery(t *testing.T) {
	bank, err := SizeBattery(25, []model.BatteryModel{{Model: "B48", CapacityKWh: 4.8, Price: 6000000}})
	require.NoError(t, err)
	assert.Equal(t, 6, bank.Units)
	assert.InDelta(t, 28.8, bank.CapacityKWh(), 1e-9)
	assert.InDelta(t, 36000000, bank.Cost(), 1e-6)

	_, err = SizeBattery(25, nil)
	assert.ErrorIs(t, err, model.ErrNoCandidates)
}

func TestAssemble_CopiesBattery(t *testing.T) {
	bank := &BatteryBank{Units: 2, Battery: model.BatteryModel{CapacityKWh: 5}}
	cfg := Assemble(PanelSizing{PanelCount: 4}, model.InverterModel{Model: "X"}, bank, model.ConnectionHybrid, 300)
	bank.Units = 99

	require.NotNil(t, cfg.Battery)
	assert.Equal(t, 2, cfg.Battery.Units)
	assert.Equal(t, 4, cfg.PanelCount)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
