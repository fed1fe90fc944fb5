package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-sizer/internal/budget"
	"solar-sizer/internal/data"
	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"
	"solar-sizer/internal/projection"
	"solar-sizer/internal/sizing"
	"solar-sizer/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk engine configuration shape (YAML). Every field is
// optional. Load starts from the defaults, so keys absent from the file keep
// them and an explicit 0 (say, finance.degradation_rate) is honored. A Config
// built in code overlays only its non-zero fields.
type Config struct {
	// Optional: load the equipment catalog from a separate YAML or JSON file.
	// Relative paths are resolved against the config file directory first.
	CatalogFile string `yaml:"catalog_file"`

	SystemEfficiency      float64           `yaml:"system_efficiency"`
	BatterySizing         BatterySizing     `yaml:"battery_sizing"`
	CostModel             budget.CostModel  `yaml:"cost_model"`
	Finance               projection.Params `yaml:"finance"`
	Scoring               strategy.Params   `yaml:"scoring"`
	PremiumInverterBrands []string          `yaml:"premium_inverter_brands"`

	catalog *model.Catalog
	// loaded is set by LoadUnchecked, whose sections start from defaults.
	loaded bool
}

type BatterySizing struct {
	AutonomyDays        float64 `yaml:"autonomy_days"`
	DepthOfDischargePct float64 `yaml:"depth_of_discharge_pct"`
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config and its catalog file, but does not validate
// the engine parameters.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := defaultConfig()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.CatalogFile != "" {
		catalogPath := c.CatalogFile
		if !filepath.IsAbs(catalogPath) {
			// Prefer the config directory, fall back to the path relative to cwd.
			cand := filepath.Join(filepath.Dir(path), catalogPath)
			if _, err := os.Stat(cand); err == nil {
				catalogPath = cand
			}
		}
		cat, err := data.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		c.CatalogFile = catalogPath
		c.catalog = &cat
	}
	return &c, nil
}

func defaultConfig() Config {
	def := optimizer.DefaultParams()
	return Config{
		SystemEfficiency: def.SystemEfficiency,
		BatterySizing: BatterySizing{
			AutonomyDays:        def.Battery.AutonomyDays,
			DepthOfDischargePct: def.Battery.DepthOfDischargePct,
		},
		CostModel: def.Cost,
		Finance:   def.Finance,
		Scoring:   def.Strategy,
		loaded:    true,
	}
}

// Catalog returns the catalog named by catalog_file, or the built-in one.
func (c *Config) Catalog() model.Catalog {
	if c == nil || c.catalog == nil {
		return data.DefaultCatalog()
	}
	return *c.catalog
}

// Params returns the engine parameters described by c.
func (c *Config) Params() optimizer.Params {
	p := optimizer.DefaultParams()
	if c == nil {
		return p
	}
	if c.loaded {
		p.SystemEfficiency = c.SystemEfficiency
		p.Battery = sizing.BatteryParams{
			AutonomyDays:        c.BatterySizing.AutonomyDays,
			DepthOfDischargePct: c.BatterySizing.DepthOfDischargePct,
		}
		p.Cost = c.CostModel
		p.Finance = c.Finance
		p.Strategy = c.Scoring
		p.Strategy.PremiumInverterBrands = append([]string(nil), c.Scoring.PremiumInverterBrands...)
		if len(c.PremiumInverterBrands) > 0 {
			p.Strategy.PremiumInverterBrands = append([]string(nil), c.PremiumInverterBrands...)
		}
		return p
	}
	if c.SystemEfficiency != 0 {
		p.SystemEfficiency = c.SystemEfficiency
	}
	p.Battery = MergeBatterySizing(p.Battery, c.BatterySizing)
	p.Cost = p.Cost.Merge(c.CostModel)
	p.Finance = p.Finance.Merge(c.Finance)
	p.Strategy = p.Strategy.Merge(c.Scoring)
	if len(c.PremiumInverterBrands) > 0 {
		p.Strategy.PremiumInverterBrands = append([]string(nil), c.PremiumInverterBrands...)
	}
	return p
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return ValidateParams(c.Params())
}

// ValidateParams rejects parameter sets the engine cannot run with.
func ValidateParams(p optimizer.Params) error {
	if p.SystemEfficiency <= 0 || p.SystemEfficiency > 1 {
		return fmt.Errorf("system_efficiency must be in (0, 1], got %v", p.SystemEfficiency)
	}
	if p.Battery.AutonomyDays <= 0 {
		return fmt.Errorf("battery_sizing.autonomy_days must be > 0, got %v", p.Battery.AutonomyDays)
	}
	if p.Battery.DepthOfDischargePct <= 0 || p.Battery.DepthOfDischargePct > 100 {
		return fmt.Errorf("battery_sizing.depth_of_discharge_pct must be in (0, 100], got %v", p.Battery.DepthOfDischargePct)
	}
	if p.Cost.PanelsPerString < 1 {
		return fmt.Errorf("cost_model.panels_per_string must be >= 1, got %d", p.Cost.PanelsPerString)
	}
	if p.Finance.HorizonYears < 1 {
		return fmt.Errorf("finance.horizon_years must be >= 1, got %d", p.Finance.HorizonYears)
	}
	if p.Finance.DegradationRate < 0 || p.Finance.DegradationRate >= 1 {
		return fmt.Errorf("finance.degradation_rate must be in [0, 1), got %v", p.Finance.DegradationRate)
	}
	if p.Finance.IRRMaxIterations < 1 {
		return fmt.Errorf("finance.irr_max_iterations must be >= 1, got %d", p.Finance.IRRMaxIterations)
	}
	if p.Strategy.CostPerWpDivisor <= 0 || p.Strategy.ROIDivisor <= 0 || p.Strategy.BatteryCycleReference <= 0 {
		return errors.New("scoring divisors must be > 0")
	}
	return nil
}

// MergeBatterySizing overlays non-zero fields from override onto base.
func MergeBatterySizing(base sizing.BatteryParams, override BatterySizing) sizing.BatteryParams {
	out := base
	if override.AutonomyDays != 0 {
		out.AutonomyDays = override.AutonomyDays
	}
	if override.DepthOfDischargePct != 0 {
		out.DepthOfDischargePct = override.DepthOfDischargePct
	}
	return out
}
