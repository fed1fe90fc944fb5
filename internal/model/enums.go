package model

import (
	"fmt"
	"strings"
)

// ConnectionType describes how the installation relates to the utility grid.
// Keep these values stable; they are used in catalog files and API payloads.
type ConnectionType string

const (
	ConnectionGridTied ConnectionType = "grid-tied"
	ConnectionOffGrid  ConnectionType = "off-grid"
	ConnectionHybrid   ConnectionType = "hybrid"
)

// ParseConnectionType accepts the canonical values plus a few common aliases
// ("on-grid", "hibrido").
func ParseConnectionType(s string) (ConnectionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid-tied", "gridtied", "on-grid", "ongrid":
		return ConnectionGridTied, nil
	case "off-grid", "offgrid":
		return ConnectionOffGrid, nil
	case "hybrid", "hibrido", "híbrido":
		return ConnectionHybrid, nil
	default:
		return "", fmt.Errorf("%w: unknown connection type %q", ErrInvalidInput, s)
	}
}

// InstallationCategory is carried through for reporting only.
type InstallationCategory string

const (
	CategoryResidential InstallationCategory = "residential"
	CategoryCommercial  InstallationCategory = "commercial"
	CategoryIndustrial  InstallationCategory = "industrial"
)

func ParseInstallationCategory(s string) (InstallationCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "residential", "residencial":
		return CategoryResidential, nil
	case "commercial", "comercial":
		return CategoryCommercial, nil
	case "industrial":
		return CategoryIndustrial, nil
	default:
		return "", fmt.Errorf("%w: unknown installation category %q", ErrInvalidInput, s)
	}
}

// Priority is the optimization criterion the customer cares about most.
type Priority string

const (
	PriorityCost           Priority = "cost"
	PriorityQuality        Priority = "quality"
	PrioritySustainability Priority = "sustainability"
)

// ParsePriority defaults to PriorityCost on empty input.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cost", "costo":
		return PriorityCost, nil
	case "quality", "calidad":
		return PriorityQuality, nil
	case "sustainability", "sostenibilidad":
		return PrioritySustainability, nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, s)
	}
}
