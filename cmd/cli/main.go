package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"solar-sizer/internal/config"
	"solar-sizer/internal/data"
	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"
	"solar-sizer/internal/projection"
	"solar-sizer/internal/store"

	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "rank":
		err = cmdRank(os.Args[2:])
	case "schedule":
		err = cmdSchedule(os.Args[2:])
	case "locations":
		err = cmdLocations(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, model.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli rank --consumption 500 --city Bogotá --connection grid-tied [--priority quality]")
	fmt.Println("  cli schedule --consumption 500 --hsp 4.5 --connection hybrid --battery --strategy cost --out results/schedule.csv")
	fmt.Println("  cli locations")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - rank prints the three strategy configurations, chosen priority first")
	fmt.Println("  - schedule writes the full 25-year cash-flow projection of one strategy as CSV")
	fmt.Println("  - --config points at a YAML engine config; --catalog overrides its equipment catalog")
}

// projectFlags are shared by rank and schedule.
type projectFlags struct {
	consumption   float64
	autonomy      float64
	hsp           float64
	city          string
	connection    string
	category      string
	priority      string
	battery       bool
	space         bool
	tariff        float64
	exchangeRate  float64
	maxBudget     float64
	configPath    string
	catalogPath   string
	locationsPath string
}

func registerProjectFlags(fs *pflag.FlagSet) *projectFlags {
	f := &projectFlags{}
	fs.Float64VarP(&f.consumption, "consumption", "m", 0, "Monthly consumption in kWh")
	fs.Float64VarP(&f.autonomy, "autonomy", "a", 100, "Percentage of consumption to cover (0-100]")
	fs.Float64Var(&f.hsp, "hsp", 0, "Peak sun hours; looked up from --city when 0")
	fs.StringVarP(&f.city, "city", "l", "", "Colombian city for the peak sun hours lookup")
	fs.StringVarP(&f.connection, "connection", "c", "grid-tied", "Connection type: grid-tied, off-grid or hybrid")
	fs.StringVar(&f.category, "category", "residential", "Installation category: residential, commercial or industrial")
	fs.StringVarP(&f.priority, "priority", "p", "cost", "Priority: cost, quality or sustainability")
	fs.BoolVarP(&f.battery, "battery", "b", false, "Include battery storage")
	fs.BoolVar(&f.space, "space", false, "Roof space is constrained")
	fs.Float64Var(&f.tariff, "tariff", store.DefaultTariffPerKWh, "Electricity tariff in COP/kWh")
	fs.Float64Var(&f.exchangeRate, "exchange-rate", store.DefaultExchangeRate, "COP per USD (reported only)")
	fs.Float64Var(&f.maxBudget, "max-budget", 0, "Budget ceiling in COP; 0 means no limit")
	fs.StringVar(&f.configPath, "config", "", "Path to YAML engine config")
	fs.StringVar(&f.catalogPath, "catalog", "", "Path to a YAML or JSON equipment catalog")
	fs.StringVar(&f.locationsPath, "locations", data.GetDefaultLocationsPath(), "Path to the peak sun hours table")
	return f
}

func (f *projectFlags) input() (model.ProjectInput, error) {
	in := model.ProjectInput{
		City:                  f.city,
		MonthlyConsumptionKWh: f.consumption,
		AutonomyPct:           f.autonomy,
		PeakSunHours:          f.hsp,
		Connection:            model.ConnectionType(f.connection),
		Category:              model.InstallationCategory(f.category),
		MaxBudget:             f.maxBudget,
		Priority:              model.Priority(f.priority),
		RequiresBattery:       f.battery,
		SpaceConstrained:      f.space,
		TariffPerKWh:          f.tariff,
		ExchangeRate:          f.exchangeRate,
	}
	if in.PeakSunHours == 0 && in.City != "" {
		locations, err := data.LoadLocationsOrDefault(f.locationsPath)
		if err != nil {
			return in, err
		}
		loc, ok := locations.Lookup(in.City)
		if !ok {
			return in, fmt.Errorf("%w: unknown city %q, pass --hsp", model.ErrInvalidInput, in.City)
		}
		in.City = loc.City
		in.PeakSunHours = loc.PeakSunHours
	}
	return in, nil
}

func (f *projectFlags) engine() (model.Catalog, optimizer.Params, error) {
	var cfg *config.Config
	if f.configPath != "" {
		c, err := config.Load(f.configPath)
		if err != nil {
			return model.Catalog{}, optimizer.Params{}, err
		}
		cfg = c
	}
	catalog := cfg.Catalog()
	if f.catalogPath != "" {
		c, err := data.LoadCatalog(f.catalogPath)
		if err != nil {
			return model.Catalog{}, optimizer.Params{}, err
		}
		catalog = c
	}
	return catalog, cfg.Params(), nil
}

func (f *projectFlags) rank() (model.ProjectInput, []optimizer.RankedConfiguration, error) {
	in, err := f.input()
	if err != nil {
		return in, nil, err
	}
	catalog, params, err := f.engine()
	if err != nil {
		return in, nil, err
	}
	results, err := optimizer.Rank(in, catalog, params)
	return in, results, err
}

func cmdRank(args []string) error {
	fs := pflag.NewFlagSet("rank", pflag.ExitOnError)
	f := registerProjectFlags(fs)
	_ = fs.Parse(args)

	in, results, err := f.rank()
	if err != nil {
		return err
	}

	fmt.Printf("Project: %.0f kWh/month, %.1f HSP, %s, autonomy %.0f%%\n",
		in.MonthlyConsumptionKWh, in.PeakSunHours, in.Connection, in.AutonomyPct)
	if len(results) == 0 {
		fmt.Printf("No configuration fits the budget of $%.0f COP\n", in.MaxBudget)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tstrategy\tpanels\tkWp\tinverter\tbattery\ttotal COP\tCOP/Wp\tpayback\tROI%\tIRR%\tscore")
	for i, rc := range results {
		s := rc.Sized
		battery := "-"
		if s.Battery != nil {
			battery = fmt.Sprintf("%dx %s", s.Battery.Units, s.Battery.Battery.Model)
		}
		payback := fmt.Sprintf("%.1f", rc.Projection.PaybackRounded())
		if !rc.Projection.PaybackWithinHorizon {
			payback = fmt.Sprintf(">%d", rc.Projection.Params.HorizonYears)
		}
		fmt.Fprintf(tw, "%d\t%s\t%dx %s\t%.2f\t%s\t%s\t%.0f\t%.0f\t%s\t%.1f\t%.1f\t%.1f\n",
			i+1,
			rc.Strategy,
			s.PanelCount, s.Panel.Model,
			s.RealPowerKWp,
			s.Inverter.Model,
			battery,
			rc.Budget.Total,
			rc.Budget.CostPerWp,
			payback,
			rc.Projection.ROIPct,
			rc.Projection.IRRPct,
			rc.Score,
		)
	}
	return tw.Flush()
}

func cmdSchedule(args []string) error {
	fs := pflag.NewFlagSet("schedule", pflag.ExitOnError)
	f := registerProjectFlags(fs)
	strategyName := fs.StringP("strategy", "s", "", "Strategy whose schedule to export; defaults to --priority")
	outPath := fs.StringP("out", "o", "results/schedule.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *strategyName == "" {
		*strategyName = f.priority
	}
	want, err := model.ParsePriority(*strategyName)
	if err != nil {
		return err
	}

	_, results, err := f.rank()
	if err != nil {
		return err
	}
	for _, rc := range results {
		if rc.Strategy != want {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := projection.WriteScheduleFile(*outPath, rc.Projection.CashFlows); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rc.Projection.CashFlows), *outPath)
		fmt.Printf("Investment=$%.0f COP NPV=$%.0f COP Payback=%.1f years\n",
			rc.Projection.Investment, rc.Projection.NPV, rc.Projection.PaybackRounded())
		return nil
	}
	return fmt.Errorf("no %s configuration within budget", want)
}

func cmdLocations(args []string) error {
	fs := pflag.NewFlagSet("locations", pflag.ExitOnError)
	path := fs.String("locations", data.GetDefaultLocationsPath(), "Path to the peak sun hours table")
	_ = fs.Parse(args)

	list, err := data.LoadLocationsOrDefault(*path)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "city\tdepartment\tHSP")
	for _, loc := range list.Locations {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\n", loc.City, loc.Department, loc.PeakSunHours)
	}
	return tw.Flush()
}
