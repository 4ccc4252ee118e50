package dynamics

import (
	"math"
	"math/rand/v2"

	"galaxy-server/internal/mathutil"
)

const (
	cometDensity      = 1000 // kg/m³
	sizeToRadius      = 500
	joulesPerMegatonT = 4.184e15
	influenceFraction = 0.1
)

type Collision struct {
	ObjectID string  `json:"objectId"`
	PlanetID string  `json:"planetId"`
	Distance float64 `json:"distance"`
	Energy   float64 `json:"energy"` // megatons of TNT
	Time     float64 `json:"time"`
}

// CheckCollisions tests every object against every planet in the orbital plane; a hit is any
// object inside a tenth of the planet radius
func CheckCollisions(rng *rand.Rand, objects, planets []TrackedPosition, simTime float64) []Collision {
	var collisions []Collision

	for _, obj := range objects {
		for _, planet := range planets {
			d := mathutil.Distance2D(obj.Position.X, obj.Position.Y, planet.Position.X, planet.Position.Y)
			if d >= planet.Radius*influenceFraction {
				continue
			}
			collisions = append(collisions, Collision{
				ObjectID: obj.ID,
				PlanetID: planet.ID,
				Distance: d,
				Energy:   ImpactEnergy(rng, obj.Size),
				Time:     simTime,
			})
		}
	}
	return collisions
}

// ImpactEnergy estimates the kinetic energy in megatons of an icy impactor of the given size,
// striking at a random speed between 20 and 70 km/s
func ImpactEnergy(rng *rand.Rand, size float64) float64 {
	velocity := mathutil.Uniform(rng, 20, 70) * 1000
	return KineticEnergy(size, velocity) / joulesPerMegatonT
}

// KineticEnergy is in joules for velocity in m/s
func KineticEnergy(size, velocity float64) float64 {
	radius := size * sizeToRadius
	mass := cometDensity * (4.0 / 3.0) * math.Pi * radius * radius * radius
	return 0.5 * mass * velocity * velocity
}
