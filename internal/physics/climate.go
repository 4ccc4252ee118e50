package physics

import (
	"math"

	"galaxy-server/internal/models"
)

const (
	defaultAlbedo      = 0.3
	climateSensitivity = 0.8 // K per W/m²
	referenceCO2       = 0.00028
	kelvinOffset       = 273.15
	pressureScale      = 101.325
)

// ordered so the sum is reproducible
var greenhouseGases = []struct {
	gas     string
	forcing float64
}{
	{"CO2", 5.35},
	{"CH4", 0.5},
	{"N2O", 0.15},
	{"H2O", 2.0},
}

// earthBaseline is used when no composition is known at all
var earthBaseline = map[string]float64{
	"CO2": 0.0004,
	"CH4": 0.0000018,
	"N2O": 0.00000032,
	"H2O": 0.01,
}

// EquilibriumTemperature returns the effective and surface temperatures in °C for a planet at
// semiMajorAxis AU around a star of the given luminosity
func EquilibriumTemperature(luminosity, semiMajorAxis float64, atmosphere models.Atmosphere) models.Temperature {
	d := semiMajorAxis * AU
	flux := luminosity * SolarLuminosity / (4 * math.Pi * d * d)

	albedo := atmosphere.Albedo
	if albedo == 0 {
		albedo = defaultAlbedo
	}
	absorbed := flux * (1 - albedo) / 4

	effective := math.Pow(absorbed/Sigma, 0.25)
	greenhouse := GreenhouseEffect(atmosphere.Composition)

	return models.Temperature{
		Effective:  effective - kelvinOffset,
		Surface:    effective + greenhouse - kelvinOffset,
		Greenhouse: greenhouse,
		Albedo:     albedo,
	}
}

// GreenhouseEffect sums the logarithmic forcing of CO2, CH4, N2O and H2O and converts it to
// kelvin. Gases that are absent or non-positive contribute nothing.
func GreenhouseEffect(composition map[string]float64) float64 {
	if len(composition) == 0 {
		composition = earthBaseline
	}

	forcing := 0.0
	for _, g := range greenhouseGases {
		if c := composition[g.gas]; c > 0 {
			forcing += g.forcing * math.Log(c/referenceCO2)
		}
	}
	return forcing * climateSensitivity
}

func HabitableZone(luminosity float64) models.HabitableZone {
	root := math.Sqrt(luminosity)
	inner, outer := 0.95*root, 1.37*root

	return models.HabitableZone{Inner: inner, Outer: outer, Width: outer - inner}
}

// SurfaceGravity is in m/s² for a planet of mass Earth masses and radius Earth radii
func SurfaceGravity(mass, radius float64) float64 {
	r := radius * EarthRadius
	return G * mass * EarthMass / (r * r)
}

// SurfacePressure scales gravity by the atmosphere mass in Earth atmospheres and returns kPa.
// A zero atmosphere mass counts as one Earth atmosphere.
func SurfacePressure(mass, radius, atmosphereMass float64) float64 {
	if atmosphereMass == 0 {
		atmosphereMass = 1
	}
	return atmosphereMass * SurfaceGravity(mass, radius) * pressureScale
}
