package generator

import (
	"strings"

	"galaxy-server/internal/catalog"
	"galaxy-server/internal/shared/errors"
)

const (
	MinPlanets    = 1
	MaxPlanets    = 15
	MinStarMass   = 0.1
	MaxStarMass   = 100.0
	MaxStarAge    = 15000.0 // millions of years
	maxNameLength = 64

	DefaultStarAge        = 4600.0
	DefaultMultipleSystem = "single"
	DefaultZonePreference = "optimal"
	DefaultGovernment     = "democratica"
)

// Params are the player supplied inputs of a new star system. StarAge is in millions of years.
type Params struct {
	Name           string  `json:"name"`
	StarType       string  `json:"starType"`
	StarMass       float64 `json:"starMass"`
	StarAge        float64 `json:"starAge"`
	PlanetsCount   int     `json:"planetsCount"`
	MultipleSystem string  `json:"multipleSystem"`
	HabitableZone  string  `json:"habitableZone"`
	GovernmentType string  `json:"governmentType"`
	Seed           *uint64 `json:"seed,omitempty"`
}

// WithDefaults fills the optional fields left empty
func (p Params) WithDefaults() Params {
	p.Name = strings.TrimSpace(p.Name)
	if p.StarAge == 0 {
		p.StarAge = DefaultStarAge
	}
	if p.MultipleSystem == "" {
		p.MultipleSystem = DefaultMultipleSystem
	}
	if p.HabitableZone == "" {
		p.HabitableZone = DefaultZonePreference
	}
	if p.GovernmentType == "" {
		p.GovernmentType = DefaultGovernment
	}
	return p
}

// Validate checks p against the catalog; call WithDefaults first
func (p Params) Validate(c *catalog.Catalog) error {
	if p.Name == "" {
		return errors.Validation("name is required")
	}
	if len(p.Name) > maxNameLength {
		return errors.Validationf("name must be at most %d characters", maxNameLength)
	}
	if _, ok := c.StarType(p.StarType); !ok {
		return errors.Validationf("unknown starType %q, expected one of %s", p.StarType, strings.Join(c.StarTypeKeys(), ", "))
	}
	if !(p.StarMass >= MinStarMass && p.StarMass <= MaxStarMass) {
		return errors.Validationf("starMass must be between %g and %g solar masses", MinStarMass, MaxStarMass)
	}
	if !(p.StarAge > 0 && p.StarAge <= MaxStarAge) {
		return errors.Validationf("starAge must be greater than 0 and at most %g million years", MaxStarAge)
	}
	if p.PlanetsCount < MinPlanets || p.PlanetsCount > MaxPlanets {
		return errors.Validationf("planetsCount must be between %d and %d", MinPlanets, MaxPlanets)
	}
	if _, ok := c.MultipleSystem(p.MultipleSystem); !ok {
		return errors.Validationf("unknown multipleSystem %q", p.MultipleSystem)
	}
	if _, ok := c.ZonePreference(p.HabitableZone); !ok {
		return errors.Validationf("unknown habitableZone %q", p.HabitableZone)
	}
	if _, ok := c.Government(p.GovernmentType); !ok {
		return errors.Validationf("unknown governmentType %q, expected one of %s", p.GovernmentType, strings.Join(c.GovernmentKeys(), ", "))
	}
	return nil
}
