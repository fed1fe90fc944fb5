package config

import (
	"os"
	"path/filepath"
	"testing"

	"solar-sizer/internal/data"
	"solar-sizer/internal/optimizer"
	"solar-sizer/internal/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	writeFile(t, path, `
system_efficiency: 0.85
battery_sizing:
  autonomy_days: 1.5
cost_model:
  margin_pct: 25
finance:
  discount_rate: 0.1
  horizon_years: 20
scoring:
  cost_per_wp_divisor: 60
premium_inverter_brands: [Huawei]
`)
	c, err := Load(path)
	require.NoError(t, err)

	p := c.Params()
	def := optimizer.DefaultParams()
	assert.Equal(t, 0.85, p.SystemEfficiency)
	assert.Equal(t, 1.5, p.Battery.AutonomyDays)
	assert.Equal(t, def.Battery.DepthOfDischargePct, p.Battery.DepthOfDischargePct)
	assert.Equal(t, 25.0, p.Cost.MarginPct)
	assert.Equal(t, def.Cost.EngineeringPct, p.Cost.EngineeringPct)
	assert.Equal(t, 0.1, p.Finance.DiscountRate)
	assert.Equal(t, 20, p.Finance.HorizonYears)
	assert.Equal(t, def.Finance.DegradationRate, p.Finance.DegradationRate)
	assert.Equal(t, 60.0, p.Strategy.CostPerWpDivisor)
	assert.Equal(t, []string{"Huawei"}, p.Strategy.PremiumInverterBrands)

	assert.Equal(t, data.DefaultCatalog(), c.Catalog())
}

func TestLoad_ExplicitZeroRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	writeFile(t, path, `
cost_model:
  contingency_pct: 0
finance:
  degradation_rate: 0
  energy_inflation_rate: 0
scoring:
  ntype_bonus: 0
`)
	c, err := Load(path)
	require.NoError(t, err)

	p := c.Params()
	def := optimizer.DefaultParams()
	assert.Zero(t, p.Cost.ContingencyPct)
	assert.Zero(t, p.Finance.DegradationRate)
	assert.Zero(t, p.Finance.EnergyInflationRate)
	assert.Zero(t, p.Strategy.NTypeBonus)
	assert.Equal(t, def.Finance.DiscountRate, p.Finance.DiscountRate)
	assert.Equal(t, def.Cost.MarginPct, p.Cost.MarginPct)
	assert.Equal(t, def.Strategy.PremiumInverterBrands, p.Strategy.PremiumInverterBrands)

	// Literal configs keep the non-zero overlay.
	lit := &Config{Finance: projection.Params{DiscountRate: 0.12}}
	lp := lit.Params()
	assert.Equal(t, 0.12, lp.Finance.DiscountRate)
	assert.Equal(t, def.Finance.DegradationRate, lp.Finance.DegradationRate)
}

func TestLoad_CatalogFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalogs", "small.yaml"), `
panels:
  - model: Only 450
    power_w: 450
    price: 350000
    tier: 1
`)
	path := filepath.Join(dir, "engine.yaml")
	writeFile(t, path, "catalog_file: catalogs/small.yaml\n")

	c, err := Load(path)
	require.NoError(t, err)
	cat := c.Catalog()
	require.Len(t, cat.Panels, 1)
	assert.Equal(t, "Only 450", cat.Panels[0].Model)
	assert.Equal(t, filepath.Join(dir, "catalogs", "small.yaml"), c.CatalogFile)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "system_efficiency: [1, 2]\n")
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "system_efficiency: 1.5\n")
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "system_efficiency")

	c, err := LoadUnchecked(invalid)
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.SystemEfficiency)

	noCatalog := filepath.Join(dir, "nocat.yaml")
	writeFile(t, noCatalog, "catalog_file: nowhere.yaml\n")
	_, err = Load(noCatalog)
	assert.Error(t, err)
}

func TestNilConfig(t *testing.T) {
	var c *Config
	assert.Equal(t, optimizer.DefaultParams(), c.Params())
	assert.Equal(t, data.DefaultCatalog(), c.Catalog())
	assert.Error(t, c.Validate())
}

func TestValidateParams(t *testing.T) {
	require.NoError(t, ValidateParams(optimizer.DefaultParams()))

	cases := map[string]func(*optimizer.Params){
		"efficiency": func(p *optimizer.Params) { p.SystemEfficiency = 0 },
		"autonomy":   func(p *optimizer.Params) { p.Battery.AutonomyDays = -1 },
		"dod":        func(p *optimizer.Params) { p.Battery.DepthOfDischargePct = 120 },
		"strings":    func(p *optimizer.Params) { p.Cost.PanelsPerString = 0 },
		"horizon":    func(p *optimizer.Params) { p.Finance.HorizonYears = 0 },
		"degrade":    func(p *optimizer.Params) { p.Finance.DegradationRate = 1 },
		"irr":        func(p *optimizer.Params) { p.Finance.IRRMaxIterations = 0 },
		"divisor":    func(p *optimizer.Params) { p.Strategy.CostPerWpDivisor = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := optimizer.DefaultParams()
			mutate(&p)
			assert.Error(t, ValidateParams(p))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("SOLAR_A", "")
	t.Setenv("SOLAR_B", "")
	t.Setenv("SOLAR_C", "")
	t.Setenv("SOLAR_KEEP", "already")

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, `
# comment

SOLAR_A=one
export SOLAR_B='two'
SOLAR_C="three"
SOLAR_KEEP=fromfile
not a pair
`)
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "one", os.Getenv("SOLAR_A"))
	assert.Equal(t, "two", os.Getenv("SOLAR_B"))
	assert.Equal(t, "three", os.Getenv("SOLAR_C"))
	assert.Equal(t, "already", os.Getenv("SOLAR_KEEP"))

	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestParseDotEnvLine(t *testing.T) {
	k, v, ok := parseDotEnvLine(`  KEY = "a=b" `)
	require.True(t, ok)
	assert.Equal(t, "KEY", k)
	assert.Equal(t, "a=b", v)

	_, v, ok = parseDotEnvLine(`K="unbalanced'`)
	require.True(t, ok)
	assert.Equal(t, `"unbalanced'`, v)

	_, _, ok = parseDotEnvLine("=value")
	assert.False(t, ok)
}

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{"API_PORT", "API_ENV", "DB_PATH", "LOCATIONS_FILE", "NARRATIVE_API_KEY", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	e := LoadEnv()
	assert.Equal(t, "8080", e.Port)
	assert.Equal(t, "./solar.db", e.DBPath)
	assert.Equal(t, "./data/locations.json", e.LocationsFile)
	assert.False(t, e.Production())

	t.Setenv("API_ENV", "production")
	t.Setenv("API_PORT", "9090")
	e = LoadEnv()
	assert.True(t, e.Production())
	assert.Equal(t, "9090", e.Port)
	assert.Empty(t, e.AllowedOrigins)

	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	e = LoadEnv()
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, e.AllowedOrigins)
}
