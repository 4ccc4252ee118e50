// Package civilization scores how fast a planetary civilization develops and projects the
// crises it is heading towards.
package civilization

import (
	"math"

	"galaxy-server/internal/mathutil"
	"galaxy-server/internal/models"
)

const (
	baseRate = 0.01 // per century
	minRate  = 0.001
	maxRate  = 0.1

	largeMoonMass = 0.01
	maxStability  = 1.5
)

var resourceWeights = []struct {
	name   string
	weight float64
}{
	{models.ResourceMetals, 0.4},
	{models.ResourceEnergy, 0.3},
	{models.ResourceRareElements, 0.3},
}

// EvolutionRate is the development rate per century, clamped to [0.001, 0.1]
func EvolutionRate(p models.Planet) float64 {
	rate := baseRate *
		ResourceFactor(p.Resources) *
		EnvironmentFactor(p.Conditions) *
		StabilityFactor(p) *
		MoonFactor(p.Moons)

	return mathutil.Clamp(rate, minRate, maxRate)
}

// ResourceFactor weighs the remaining fraction of metals, energy and rare elements, each capped
// at 1. A missing resource contributes nothing.
func ResourceFactor(resources map[string]models.Resource) float64 {
	factor := 0.0
	for _, rw := range resourceWeights {
		r, ok := resources[rw.name]
		if !ok {
			continue
		}
		factor += math.Min(1, r.RemainingFraction()) * rw.weight
	}
	return factor
}

func EnvironmentFactor(c models.Conditions) float64 {
	factor := 1.0

	switch h := c.Habitability; {
	case h < 0.3:
		factor *= 0.3
	case h < 0.6:
		factor *= 0.7
	case h > 0.9:
		factor *= 1.2
	}

	if c.TemperatureStability < 0.5 {
		factor *= 0.8
	}
	return factor
}

// StabilityFactor penalises eccentric orbits and strong tectonics and rewards large moons that
// steady the axis, capped at 1.5
func StabilityFactor(p models.Planet) float64 {
	stability := 1.0

	if p.Orbit.Eccentricity > 0.2 {
		stability *= 0.9
	}
	if p.TectonicActivity == models.TectonicHigh {
		stability *= 0.8
	}

	large := 0
	for _, m := range p.Moons {
		if m.Mass > largeMoonMass {
			large++
		}
	}
	stability *= 1 + 0.1*float64(large)

	return math.Min(maxStability, stability)
}

func MoonFactor(moons []models.Moon) float64 {
	return 1 + 0.05*float64(len(moons))
}
