// Package physics implements the closed-form approximations of stellar evolution, orbital
// mechanics and planetary climate used to generate and age star systems.
//
// Masses are in solar masses for stars and Earth masses for planets, distances in AU and
// times in years unless a function says otherwise. Functions taking a stellar mass panic when
// it is not positive.
package physics

import "fmt"

const (
	G               = 6.67430e-11    // m³/kg/s²
	C               = 299792458      // m/s
	Sigma           = 5.670374419e-8 // W/m²/K⁴
	AU              = 1.495978707e11 // m
	Parsec          = 3.085677581e16 // m
	LightYear       = 9.460730473e15 // m
	SolarMass       = 1.98847e30     // kg
	SolarRadius     = 6.957e8        // m
	SolarLuminosity = 3.828e26       // W
	EarthMass       = 5.9722e24      // kg
	EarthRadius     = 6.371e6        // m
	EarthAlbedo     = 0.306
	YearSeconds     = 31557600
	GalacticYear    = 2.25e8 // years
)

const solarLifetime = 1e10

func ToSolarMasses(earthMasses float64) float64 {
	return earthMasses * EarthMass / SolarMass
}

func requirePositiveMass(fn string, mass float64) {
	if !(mass > 0) {
		panic(fmt.Sprintf("physics.%s: mass must be positive, got %v", fn, mass))
	}
}
