package physics

import (
	"math"

	"galaxy-server/internal/models"
)

// MinimumFusionMass is the lightest object, in solar masses, that sustains hydrogen fusion
const MinimumFusionMass = 0.08

const (
	StageYoung        = "young"
	StageMainSequence = "main_sequence"
	StageGiant        = "giant"
	StageSupergiant   = "supergiant"
	StageRemnant      = "remnant"
)

var spectralColors = map[string]string{
	"O": "#9BB0FF",
	"B": "#AABFFF",
	"A": "#CAD7FF",
	"F": "#F8F7FF",
	"G": "#FFF4EA",
	"K": "#FFD2A1",
	"M": "#FFCC6F",
}

// MainSequenceLifetime returns the hydrogen burning lifetime in years, scaled from a
// ten billion year solar baseline
func MainSequenceLifetime(mass float64) float64 {
	requirePositiveMass("MainSequenceLifetime", mass)

	switch {
	case mass <= 0.43:
		return solarLifetime * math.Pow(mass, -2.3)
	case mass <= 1.0:
		return solarLifetime * math.Pow(mass, -2.5)
	default:
		return solarLifetime * math.Pow(mass, -3.5)
	}
}

// Luminosity is in solar units. Past the main sequence it brightens linearly per billion
// years, so the curve jumps at the lifetime boundary.
func Luminosity(mass, age float64) float64 {
	lifetime := MainSequenceLifetime(mass)
	base := math.Pow(mass, 3.5)

	if age <= lifetime {
		return base
	}
	return base * (1 + (age-lifetime)/1e9)
}

// Radius is in solar radii
func Radius(mass float64) float64 {
	requirePositiveMass("Radius", mass)

	if mass < 1.0 {
		return math.Pow(mass, 0.8)
	}
	return math.Pow(mass, 0.57)
}

// Temperature inverts the Stefan-Boltzmann law for the effective temperature in kelvin
func Temperature(mass, luminosity float64) float64 {
	r := Radius(mass) * SolarRadius
	return math.Pow(luminosity*SolarLuminosity/(4*math.Pi*r*r*Sigma), 0.25)
}

func SpectralClass(temperature float64) string {
	switch {
	case temperature >= 30000:
		return "O"
	case temperature >= 10000:
		return "B"
	case temperature >= 7500:
		return "A"
	case temperature >= 6000:
		return "F"
	case temperature >= 5200:
		return "G"
	case temperature >= 3700:
		return "K"
	default:
		return "M"
	}
}

func StarColor(spectralClass string) string {
	if color, ok := spectralColors[spectralClass]; ok {
		return color
	}
	return "#FFFFFF"
}

func EvolutionaryStage(mass, age float64) string {
	lifetime := MainSequenceLifetime(mass)

	switch {
	case age < lifetime*0.1:
		return StageYoung
	case age < lifetime*0.9:
		return StageMainSequence
	case age < lifetime*1.1:
		return StageGiant
	case age < lifetime*1.5:
		return StageSupergiant
	default:
		return StageRemnant
	}
}

// IsStarStable reports whether the star is still on the main sequence
func IsStarStable(mass, age float64) bool {
	return age <= MainSequenceLifetime(mass)
}

type EvolvingZone struct {
	Current  models.HabitableZone `json:"current"`
	Future   models.HabitableZone `json:"future"`
	HasMoved bool                 `json:"hasMoved"`
}

// EvolvingHabitableZone compares the habitable zone now with the zone one billion years ahead
func EvolvingHabitableZone(mass, age float64) EvolvingZone {
	current := Luminosity(mass, age)
	future := Luminosity(mass, age+1e9)

	return EvolvingZone{
		Current:  HabitableZone(current),
		Future:   HabitableZone(future),
		HasMoved: math.Abs(future-current) > 0.1,
	}
}

// DeriveStar builds a star whose derived properties are all functions of mass and age
func DeriveStar(starType string, mass, age float64) models.Star {
	luminosity := Luminosity(mass, age)
	temperature := Temperature(mass, luminosity)
	class := SpectralClass(temperature)

	return models.Star{
		Type:          starType,
		Mass:          mass,
		Age:           age,
		Luminosity:    luminosity,
		Temperature:   temperature,
		Radius:        Radius(mass),
		SpectralClass: class,
		Stage:         EvolutionaryStage(mass, age),
		Color:         StarColor(class),
	}
}
