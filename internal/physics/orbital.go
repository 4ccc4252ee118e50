package physics

import (
	"fmt"
	"math"

	"galaxy-server/internal/models"
)

// KeplerIterations is the fixed number of fixed-point steps used to solve Kepler's equation.
// The solver does not check convergence; results at high eccentricity are approximate.
const KeplerIterations = 10

const resonanceTolerance = 0.02

var commonResonances = [][2]int{{2, 1}, {3, 2}, {3, 1}, {4, 3}, {5, 4}, {5, 2}}

// OrbitalPeriod applies Kepler's third law, returning years for a semi-major axis in AU
func OrbitalPeriod(centralMass, semiMajorAxis float64) float64 {
	requirePositiveMass("OrbitalPeriod", centralMass)

	a := semiMajorAxis * AU
	t2 := 4 * math.Pi * math.Pi * a * a * a / (G * centralMass * SolarMass)
	return math.Sqrt(t2) / YearSeconds
}

// OrbitalVelocity returns the circular orbital speed in km/s at distance AU
func OrbitalVelocity(centralMass, distance float64) float64 {
	requirePositiveMass("OrbitalVelocity", centralMass)

	return math.Sqrt(G*centralMass*SolarMass/(distance*AU)) / 1000
}

// OrbitalElements angles are in radians
type OrbitalElements struct {
	SemiMajorAxis          float64
	Eccentricity           float64
	Inclination            float64
	LongitudeAscendingNode float64
	ArgumentPeriapsis      float64
	MeanAnomalyEpoch       float64
}

// Position is heliocentric, in AU
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Distance float64 `json:"distance"`
}

// SolveKepler iterates E = M + e·sin(E) starting from E = M
func SolveKepler(meanAnomaly, eccentricity float64, iterations int) float64 {
	e := meanAnomaly
	for i := 0; i < iterations; i++ {
		e = meanAnomaly + eccentricity*math.Sin(e)
	}
	return e
}

// OrbitalPosition places a body at time t years, assuming a one solar mass primary
func OrbitalPosition(t float64, el OrbitalElements) Position {
	period := OrbitalPeriod(1, el.SemiMajorAxis)
	mean := el.MeanAnomalyEpoch + 2*math.Pi*t/period
	ecc := SolveKepler(mean, el.Eccentricity, KeplerIterations)

	trueAnomaly := 2 * math.Atan2(
		math.Sqrt(1+el.Eccentricity)*math.Sin(ecc/2),
		math.Sqrt(1-el.Eccentricity)*math.Cos(ecc/2),
	)

	r := el.SemiMajorAxis * (1 - el.Eccentricity*math.Cos(ecc))
	xo := r * math.Cos(trueAnomaly)
	yo := r * math.Sin(trueAnomaly)

	cosN, sinN := math.Cos(el.LongitudeAscendingNode), math.Sin(el.LongitudeAscendingNode)
	cosW, sinW := math.Cos(el.ArgumentPeriapsis), math.Sin(el.ArgumentPeriapsis)
	cosI, sinI := math.Cos(el.Inclination), math.Sin(el.Inclination)

	return Position{
		X:        xo*(cosW*cosN-sinW*cosI*sinN) - yo*(sinW*cosN+cosW*cosI*sinN),
		Y:        xo*(cosW*sinN+sinW*cosI*cosN) + yo*(cosW*cosI*cosN-sinW*sinN),
		Z:        xo*(sinW*sinI) + yo*(cosW*sinI),
		Distance: r,
	}
}

// HillSphere takes both masses in the same unit and returns a radius in the unit of distance
func HillSphere(planetMass, starMass, distance float64) float64 {
	requirePositiveMass("HillSphere", starMass)

	return distance * math.Cbrt(planetMass/(3*starMass))
}

// IsOrbitStable reports whether every other planet keeps at least 3.5 Hill radii of
// semi-major-axis separation from planet
func IsOrbitStable(planet models.Planet, star models.Star, others []models.Planet) bool {
	hill := HillSphere(ToSolarMasses(planet.Mass), star.Mass, planet.Orbit.SemiMajorAxis)

	for _, other := range others {
		if other.ID == planet.ID {
			continue
		}
		if math.Abs(planet.Orbit.SemiMajorAxis-other.Orbit.SemiMajorAxis) < 3.5*hill {
			return false
		}
	}
	return true
}

type Resonance struct {
	Planets    [2]string `json:"planets"`
	Resonance  string    `json:"resonance"`
	ExactRatio float64   `json:"exactRatio"`
	Strength   float64   `json:"strength"`
}

// Dangerous reports whether the resonance destabilises the system
func (r Resonance) Dangerous() bool {
	return r.Resonance == "2:1" || r.Resonance == "3:1"
}

// FindOrbitalResonances compares the period ratio (longer over shorter) of every planet pair
// against the low order resonances
func FindOrbitalResonances(planets []models.Planet) []Resonance {
	var resonances []Resonance

	for i := 0; i < len(planets); i++ {
		for j := i + 1; j < len(planets); j++ {
			a, b := planets[i].Orbit.Period, planets[j].Orbit.Period
			if a <= 0 || b <= 0 {
				continue
			}
			ratio := math.Max(a, b) / math.Min(a, b)

			for _, pq := range commonResonances {
				target := float64(pq[0]) / float64(pq[1])
				diff := math.Abs(ratio - target)
				if diff >= resonanceTolerance {
					continue
				}
				resonances = append(resonances, Resonance{
					Planets:    [2]string{planets[i].ID, planets[j].ID},
					Resonance:  fmt.Sprintf("%d:%d", pq[0], pq[1]),
					ExactRatio: ratio,
					Strength:   1 - diff/resonanceTolerance,
				})
			}
		}
	}
	return resonances
}
