package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"solar-sizer/internal/model"

	"gopkg.in/yaml.v3"
)

// DefaultCatalog returns the built-in equipment tables, priced in COP.
// Each call returns fresh slices. Every inverter costs more than every
// inverter of a lower rating, so a larger system never gets a cheaper one.
func DefaultCatalog() model.Catalog {
	return model.Catalog{
		Panels: []model.PanelModel{
			{Model: "JA Solar JAM72S30 565W", Brand: "JA Solar", PowerW: 565, EfficiencyPct: 21.8, Price: 520000, Technology: "Mono PERC", AreaM2: 2.59, Tier: 1, WarrantyYears: 12},
			{Model: "Canadian Solar HiKu6 545W", Brand: "Canadian Solar", PowerW: 545, EfficiencyPct: 21.3, Price: 490000, Technology: "Mono", AreaM2: 2.56, Tier: 1, WarrantyYears: 12},
			{Model: "Longi Hi-MO 5 550W", Brand: "Longi", PowerW: 550, EfficiencyPct: 21.5, Price: 510000, Technology: "Mono PERC", AreaM2: 2.56, Tier: 1, WarrantyYears: 12},
			{Model: "Trina Vertex S+ 430W", Brand: "Trina Solar", PowerW: 430, EfficiencyPct: 21.0, Price: 380000, Technology: "Mono", AreaM2: 2.05, Tier: 1, WarrantyYears: 15},
			{Model: "Risen RSM120 410W", Brand: "Risen", PowerW: 410, EfficiencyPct: 20.2, Price: 310000, Technology: "Mono", AreaM2: 2.03, Tier: 2, WarrantyYears: 12},
			{Model: "Jinko Tiger Neo 580W", Brand: "Jinko Solar", PowerW: 580, EfficiencyPct: 22.5, Price: 680000, Technology: "N-Type TOPCon", AreaM2: 2.58, Tier: 1, WarrantyYears: 25},
		},
		Inverters: []model.InverterModel{
			{Model: "Growatt MIN 3000TL-X", Brand: "Growatt", PowerKW: 3, EfficiencyPct: 97.6, Price: 1850000, Type: model.ConnectionGridTied, MPPTs: 2, WarrantyYears: 5},
			{Model: "Huawei SUN2000-5KTL-L1", Brand: "Huawei", PowerKW: 5, EfficiencyPct: 98.4, Price: 3200000, Type: model.ConnectionGridTied, MPPTs: 2, WarrantyYears: 10},
			{Model: "Fronius Primo 5.0-1", Brand: "Fronius", PowerKW: 5, EfficiencyPct: 98.1, Price: 4900000, Type: model.ConnectionGridTied, MPPTs: 2, WarrantyYears: 10},
			{Model: "SMA Sunny Boy 6.0", Brand: "SMA", PowerKW: 6, EfficiencyPct: 97.8, Price: 6100000, Type: model.ConnectionGridTied, MPPTs: 2, WarrantyYears: 10},
			{Model: "Huawei SUN2000-10KTL-M1", Brand: "Huawei", PowerKW: 10, EfficiencyPct: 98.6, Price: 7400000, Type: model.ConnectionGridTied, MPPTs: 2, WarrantyYears: 10},
			{Model: "Fronius Symo 10.0-3-M", Brand: "Fronius", PowerKW: 10, EfficiencyPct: 98.0, Price: 9800000, Type: model.ConnectionGridTied, MPPTs: 2, WarrantyYears: 10},
			{Model: "Growatt SPF 5000 ES", Brand: "Growatt", PowerKW: 5, EfficiencyPct: 93.0, Price: 2900000, Type: model.ConnectionOffGrid, MPPTs: 1, WarrantyYears: 5},
			{Model: "Deye SUN-5K-SG03LP1", Brand: "Deye", PowerKW: 5, EfficiencyPct: 97.6, Price: 4600000, Type: model.ConnectionHybrid, MPPTs: 2, WarrantyYears: 10},
			{Model: "Deye SUN-8K-SG01LP1", Brand: "Deye", PowerKW: 8, EfficiencyPct: 97.6, Price: 6900000, Type: model.ConnectionHybrid, MPPTs: 2, WarrantyYears: 10},
			{Model: "Deye SUN-10K-SG04LP3", Brand: "Deye", PowerKW: 10, EfficiencyPct: 97.6, Price: 9500000, Type: model.ConnectionHybrid, MPPTs: 2, WarrantyYears: 10},
		},
		Batteries: []model.BatteryModel{
			{Model: "Pylontech US5000", Brand: "Pylontech", CapacityKWh: 4.8, Price: 5200000, CycleLife: 6000, Chemistry: "LiFePO4"},
			{Model: "BYD Battery-Box HVS 10.2", Brand: "BYD", CapacityKWh: 10.24, Price: 14500000, CycleLife: 8000, Chemistry: "LiFePO4"},
			{Model: "Deye SE-G5.1 Pro", Brand: "Deye", CapacityKWh: 5.12, Price: 4900000, CycleLife: 6000, Chemistry: "LiFePO4"},
			{Model: "Ritar DC12-200 (bank 2.4 kWh)", Brand: "Ritar", CapacityKWh: 2.4, Price: 1700000, CycleLife: 1200, Chemistry: "Lead-acid GEL"},
		},
	}
}

// LoadCatalog reads a catalog from a YAML or JSON file, chosen by extension.
// Sections missing from the file are taken from DefaultCatalog.
func LoadCatalog(path string) (model.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c model.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &c)
	default:
		err = yaml.Unmarshal(raw, &c)
	}
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	def := DefaultCatalog()
	if len(c.Panels) == 0 {
		c.Panels = def.Panels
	}
	if len(c.Inverters) == 0 {
		c.Inverters = def.Inverters
	}
	if len(c.Batteries) == 0 {
		c.Batteries = def.Batteries
	}
	if err := ValidateCatalog(c); err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// ValidateCatalog rejects entries the engine would divide by.
func ValidateCatalog(c model.Catalog) error {
	for _, p := range c.Panels {
		if p.PowerW <= 0 || p.Price <= 0 {
			return fmt.Errorf("panel %q: power_w and price must be > 0", p.Model)
		}
	}
	for _, inv := range c.Inverters {
		if inv.PowerKW <= 0 {
			return fmt.Errorf("inverter %q: power_kw must be > 0", inv.Model)
		}
		if _, err := model.ParseConnectionType(string(inv.Type)); err != nil {
			return fmt.Errorf("inverter %q: %w", inv.Model, err)
		}
	}
	for _, b := range c.Batteries {
		if b.CapacityKWh <= 0 || b.Price <= 0 {
			return fmt.Errorf("battery %q: capacity_kwh and price must be > 0", b.Model)
		}
	}
	return nil
}
