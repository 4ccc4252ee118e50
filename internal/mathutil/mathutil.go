// Package mathutil holds the small numeric helpers shared by the physics, generation and
// exploration packages.
package mathutil

import (
	"math"
	"math/rand/v2"
	"strings"
)

const yearSeconds = 31557600

func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

func Lerp(start, end, factor float64) float64 {
	return start + (end-start)*factor
}

// Map rescales value from [fromMin, fromMax] to [toMin, toMax] without clamping
func Map(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return toMin + (toMax-toMin)*((value-fromMin)/(fromMax-fromMin))
}

// SeededRandom is a stateless hash of seed into [0, 1)
func SeededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// NormalDistribution draws from N(mean, stdDev) with the Box-Muller transform
func NormalDistribution(rng *rand.Rand, mean, stdDev float64) float64 {
	u := 0.0
	for u == 0 {
		u = rng.Float64()
	}
	v := 0.0
	for v == 0 {
		v = rng.Float64()
	}
	return mean + stdDev*math.Sqrt(-2*math.Log(u))*math.Cos(2*math.Pi*v)
}

// NormalRange samples a normal centred on the middle of [lo, hi] with a sixth of the span as
// standard deviation, rejecting draws outside the range
func NormalRange(rng *rand.Rand, lo, hi float64) float64 {
	return NormalRangeWith(rng, lo, hi, (lo+hi)/2, (hi-lo)/6)
}

func NormalRangeWith(rng *rand.Rand, lo, hi, mean, stdDev float64) float64 {
	if hi <= lo || stdDev <= 0 {
		return lo
	}
	for {
		value := NormalDistribution(rng, mean, stdDev)
		if value >= lo && value <= hi {
			return value
		}
	}
}

// Uniform returns a float in [lo, hi)
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func YearsToSeconds(years float64) float64 {
	return years * yearSeconds
}

func SecondsToYears(seconds float64) float64 {
	return seconds / yearSeconds
}

func Distance2D(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func Distance3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x2-x1, y2-y1, z2-z1
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Romanize renders n in roman numerals; n <= 0 yields an empty string
func Romanize(n int) string {
	var sb strings.Builder
	for _, numeral := range romanNumerals {
		for n >= numeral.value {
			sb.WriteString(numeral.symbol)
			n -= numeral.value
		}
	}
	return sb.String()
}
