package main

import (
	"fmt"
	"log"
	"sort"
	"time"

	"solar-sizer/internal/data"

	"github.com/spf13/pflag"
)

func main() {
	var (
		outputPath = pflag.StringP("output", "o", "", "Output file path (default: ./data/locations.json)")
		seedFile   = pflag.String("seed", "", "Locations file whose entries override the built-in table")
		reset      = pflag.Bool("reset", false, "Ignore the existing output file and start from the built-in table")
	)
	pflag.Parse()

	if *outputPath == "" {
		*outputPath = data.GetDefaultLocationsPath()
	}

	base := data.DefaultLocations()
	if !*reset {
		if list, err := data.LoadLocations(*outputPath); err == nil {
			fmt.Printf("Loaded %d existing locations from %s\n", len(list.Locations), *outputPath)
			base.Locations = merge(base.Locations, list.Locations)
		}
	}
	if *seedFile != "" {
		seed, err := data.LoadLocations(*seedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		fmt.Printf("Loaded %d locations from seed file\n", len(seed.Locations))
		base.Locations = merge(base.Locations, seed.Locations)
	}
	base.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := data.SaveLocations(base, *outputPath); err != nil {
		log.Fatalf("Failed to save locations: %v", err)
	}
	fmt.Printf("Saved %d locations to %s\n", len(base.Locations), *outputPath)
}

// merge overlays updates onto base by city name; unknown cities are added.
func merge(base, updates []data.Location) []data.Location {
	byCity := make(map[string]data.Location, len(base)+len(updates))
	for _, loc := range base {
		byCity[loc.City] = loc
	}
	for _, loc := range updates {
		if prev, ok := byCity[loc.City]; ok && loc.Department == "" {
			loc.Department = prev.Department
		}
		byCity[loc.City] = loc
	}
	out := make([]data.Location, 0, len(byCity))
	for _, loc := range byCity {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out
}
