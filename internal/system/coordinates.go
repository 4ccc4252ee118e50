package system

import (
	"math/rand/v2"

	"galaxy-server/internal/shared/config"
)

const (
	QuadrantAlpha = "alpha"
	QuadrantBeta  = "beta"
	QuadrantGamma = "gamma"
	QuadrantDelta = "delta"
)

// RandomCoordinates places a system uniformly inside the galaxy, keeping the configured margin
// from every edge
func RandomCoordinates(rng *rand.Rand, cfg config.SimulationConfig) (float64, float64) {
	span := cfg.GalaxySize - 2*cfg.CoordinateMargin
	x := cfg.CoordinateMargin + rng.Float64()*span
	y := cfg.CoordinateMargin + rng.Float64()*span
	return x, y
}

// Quadrant splits the galaxy around its centre: alpha and beta below it, gamma and delta above,
// left before right
func Quadrant(x, y, galaxySize float64) string {
	center := galaxySize / 2

	switch {
	case x < center && y < center:
		return QuadrantAlpha
	case x >= center && y < center:
		return QuadrantBeta
	case x < center && y >= center:
		return QuadrantGamma
	default:
		return QuadrantDelta
	}
}
