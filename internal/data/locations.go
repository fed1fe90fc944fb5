package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Location is a city with its average peak sun hours.
type Location struct {
	City         string  `json:"city"`
	Department   string  `json:"department"`
	PeakSunHours float64 `json:"peak_sun_hours"` // h/day
}

// LocationList is the on-disk shape of the HSP table.
type LocationList struct {
	Country   string     `json:"country"`
	UpdatedAt string     `json:"updated_at"` // ISO 8601 timestamp
	Locations []Location `json:"locations"`
}

// DefaultLocations is the built-in Colombian HSP table.
func DefaultLocations() *LocationList {
	return &LocationList{
		Country:   "CO",
		UpdatedAt: "2024-01-15T00:00:00Z",
		Locations: []Location{
			{City: "Bogotá", Department: "Cundinamarca", PeakSunHours: 4.5},
			{City: "Medellín", Department: "Antioquia", PeakSunHours: 4.6},
			{City: "Cali", Department: "Valle del Cauca", PeakSunHours: 4.7},
			{City: "Barranquilla", Department: "Atlántico", PeakSunHours: 5.5},
			{City: "Cartagena", Department: "Bolívar", PeakSunHours: 5.4},
			{City: "Santa Marta", Department: "Magdalena", PeakSunHours: 5.6},
			{City: "Bucaramanga", Department: "Santander", PeakSunHours: 4.8},
			{City: "Cúcuta", Department: "Norte de Santander", PeakSunHours: 5.2},
			{City: "Pereira", Department: "Risaralda", PeakSunHours: 4.4},
			{City: "Manizales", Department: "Caldas", PeakSunHours: 4.2},
			{City: "Ibagué", Department: "Tolima", PeakSunHours: 4.9},
			{City: "Villavicencio", Department: "Meta", PeakSunHours: 4.6},
			{City: "Pasto", Department: "Nariño", PeakSunHours: 4.1},
			{City: "Valledupar", Department: "Cesar", PeakSunHours: 5.7},
			{City: "Riohacha", Department: "La Guajira", PeakSunHours: 6.0},
			{City: "Montería", Department: "Córdoba", PeakSunHours: 5.0},
		},
	}
}

// Lookup finds a city ignoring case and accents, so "bogota" matches "Bogotá".
func (l *LocationList) Lookup(city string) (Location, bool) {
	if l == nil {
		return Location{}, false
	}
	want := foldName(city)
	for _, loc := range l.Locations {
		if foldName(loc.City) == want {
			return loc, true
		}
	}
	return Location{}, false
}

var foldCaser = cases.Fold()

func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return foldCaser.String(out)
}

// LoadLocations loads locations from a JSON file
func LoadLocations(filePath string) (*LocationList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file: %w", err)
	}

	var list LocationList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse locations file: %w", err)
	}
	for _, loc := range list.Locations {
		if loc.PeakSunHours <= 0 {
			return nil, fmt.Errorf("location %q: peak_sun_hours must be > 0", loc.City)
		}
	}

	return &list, nil
}

// LoadLocationsOrDefault loads filePath when it exists and falls back to
// the built-in table otherwise.
func LoadLocationsOrDefault(filePath string) (*LocationList, error) {
	if filePath == "" {
		return DefaultLocations(), nil
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return DefaultLocations(), nil
	}
	return LoadLocations(filePath)
}

// SaveLocations saves locations to a JSON file
func SaveLocations(list *LocationList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write locations file: %w", err)
	}

	return nil
}

// GetDefaultLocationsPath returns the default path for locations file
func GetDefaultLocationsPath() string {
	if path := os.Getenv("LOCATIONS_FILE"); path != "" {
		return path
	}
	return "./data/locations.json"
}
