// Package dynamics generates transient bodies such as comets and tracks them against the
// planets of a system.
package dynamics

import (
	"fmt"
	"math"
	"math/rand/v2"

	"galaxy-server/internal/mathutil"
	"galaxy-server/internal/models"
	"galaxy-server/internal/physics"
)

const designationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type CometOrbit struct {
	SemiMajorAxis float64 `json:"semiMajorAxis"`
	Eccentricity  float64 `json:"eccentricity"`
	Inclination   float64 `json:"inclination"` // degrees
	Period        float64 `json:"period"`
}

// Composition fractions are sampled independently and do not sum to one
type Composition struct {
	Ice     float64 `json:"ice"`
	Dust    float64 `json:"dust"`
	Organic float64 `json:"organic"`
}

type Comet struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Orbit       CometOrbit  `json:"orbit"`
	Size        float64     `json:"size"` // metres
	Composition Composition `json:"composition"`
	Discovered  bool        `json:"discovered"`
	ThreatLevel float64     `json:"threatLevel"`
}

// GenerateComet draws a long period comet around primary, designated for the given galactic year
func GenerateComet(rng *rand.Rand, primary models.Star, year int) Comet {
	a := mathutil.Uniform(rng, 30, 1000)
	e := mathutil.Uniform(rng, 0.7, 0.99)

	return Comet{
		ID:   mathutil.NewID(rng),
		Name: fmt.Sprintf("C/%d %s", year, designation(rng, 3)),
		Orbit: CometOrbit{
			SemiMajorAxis: a,
			Eccentricity:  e,
			Inclination:   rng.Float64() * 180,
			Period:        physics.OrbitalPeriod(primary.Mass, a),
		},
		Size: mathutil.Uniform(rng, 100, 5000),
		Composition: Composition{
			Ice:     mathutil.Uniform(rng, 0.6, 0.9),
			Dust:    mathutil.Uniform(rng, 0.2, 0.4),
			Organic: rng.Float64() * 0.1,
		},
		ThreatLevel: ThreatLevel(a, e),
	}
}

func designation(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = designationAlphabet[rng.IntN(len(designationAlphabet))]
	}
	return string(b)
}

// ThreatLevel scores how close the perihelion comes to the inner system, capped at 1
func ThreatLevel(semiMajorAxis, eccentricity float64) float64 {
	perihelion := semiMajorAxis * (1 - eccentricity)
	threat := 0.0

	if perihelion < 1.0 {
		threat += 0.6
	}
	if perihelion < 0.5 {
		threat += 0.3
	}
	if eccentricity > 0.9 {
		threat += 0.1
	}
	return math.Min(1, threat)
}

// Body is anything that can be placed on an orbit by SimulateOrbitalMotion
type Body struct {
	ID     string
	Size   float64
	Orbit  physics.OrbitalElements
	Radius float64
}

func (c Comet) Body() Body {
	return Body{
		ID:   c.ID,
		Size: c.Size,
		Orbit: physics.OrbitalElements{
			SemiMajorAxis: c.Orbit.SemiMajorAxis,
			Eccentricity:  c.Orbit.Eccentricity,
			Inclination:   c.Orbit.Inclination * math.Pi / 180,
		},
	}
}

func PlanetBody(p models.Planet) Body {
	return Body{
		ID:     p.ID,
		Size:   p.Size,
		Radius: p.Size,
		Orbit: physics.OrbitalElements{
			SemiMajorAxis:    p.Orbit.SemiMajorAxis,
			Eccentricity:     p.Orbit.Eccentricity,
			Inclination:      p.Orbit.Inclination * math.Pi / 180,
			MeanAnomalyEpoch: p.Orbit.MeanAnomaly,
		},
	}
}

type TrackedPosition struct {
	ID       string           `json:"id"`
	Position physics.Position `json:"position"`
	Distance float64          `json:"distance"`
	Size     float64          `json:"-"`
	Radius   float64          `json:"-"`
}

// SimulateOrbitalMotion places every body at simulated time simTime, in years
func SimulateOrbitalMotion(bodies []Body, simTime float64) []TrackedPosition {
	positions := make([]TrackedPosition, 0, len(bodies))
	for _, b := range bodies {
		if b.Orbit.SemiMajorAxis <= 0 {
			continue
		}
		pos := physics.OrbitalPosition(simTime, b.Orbit)
		positions = append(positions, TrackedPosition{
			ID:       b.ID,
			Position: pos,
			Distance: pos.Distance,
			Size:     b.Size,
			Radius:   b.Radius,
		})
	}
	return positions
}
