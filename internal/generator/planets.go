package generator

import (
	"maps"
	"math"
	"math/rand/v2"

	"galaxy-server/internal/catalog"
	"galaxy-server/internal/mathutil"
	"galaxy-server/internal/models"
	"galaxy-server/internal/physics"
)

var tectonicLevels = []string{
	models.TectonicNone,
	models.TectonicLow,
	models.TectonicModerate,
	models.TectonicHigh,
}

var tectonicWeights = []int{15, 35, 35, 15}

func (g *Generator) planets(rng *rand.Rand, params Params, primary models.Star, zone models.HabitableZone) []models.Planet {
	pref, _ := g.catalog.ZonePreference(params.HabitableZone)

	planets := make([]models.Planet, 0, params.PlanetsCount)
	for i := 0; i < params.PlanetsCount; i++ {
		planetType := PlanetTypeAt(rng, i, params.PlanetsCount, pref.OceanicShare)
		planets = append(planets, g.planet(rng, params, i, planetType, primary, zone))
	}
	return planets
}

// PlanetTypeAt picks the class of planet index out of count by its relative position: the
// inner 30% rocky, the next 30% oceanic with probability oceanicShare and rocky otherwise,
// the next 20% gaseous and the rest icy
func PlanetTypeAt(rng *rand.Rand, index, count int, oceanicShare float64) models.PlanetType {
	position := float64(index) / float64(count)

	switch {
	case position < 0.3:
		return models.PlanetRocky
	case position < 0.6:
		if rng.Float64() < oceanicShare {
			return models.PlanetOceanic
		}
		return models.PlanetRocky
	case position < 0.8:
		return models.PlanetGaseous
	default:
		return models.PlanetIcy
	}
}

func (g *Generator) planet(rng *rand.Rand, params Params, index int, planetType models.PlanetType, primary models.Star, zone models.HabitableZone) models.Planet {
	pt, _ := g.catalog.PlanetType(string(planetType))
	a := OrbitalDistance(index)
	name := planetName(params.Name, index)

	p := models.Planet{
		ID:    mathutil.NewID(rng),
		Name:  name,
		Index: index,
		Type:  planetType,
		Size:  mathutil.NormalRange(rng, pt.Size.Min, pt.Size.Max),
		Mass:  mathutil.NormalRangeWith(rng, 0.1, 10, 1, 2),
	}

	p.Orbit = models.Orbit{
		SemiMajorAxis: a,
		Eccentricity:  rng.Float64() * 0.1,
		Period:        physics.OrbitalPeriod(primary.Mass, a),
		Inclination:   rng.Float64() * 10,
		MeanAnomaly:   rng.Float64() * 2 * math.Pi,
	}
	p.Rotation = models.Rotation{
		Period:    10 + rng.Float64()*30,
		AxialTilt: rng.Float64() * 45,
	}
	p.TectonicActivity = tectonicActivity(rng, planetType)

	atmosphere := atmosphereFor(pt, a, zone)
	pressure := physics.SurfacePressure(p.Mass, p.Size, atmosphere.Mass)
	p.Conditions = models.Conditions{
		Temperature:          physics.EquilibriumTemperature(primary.Luminosity, a, atmosphere),
		TemperatureStability: mathutil.Uniform(rng, 0.3, 1.0),
		Atmosphere:           atmosphere,
		Pressure:             pressure,
		Habitability:         mathutil.Clamp(mathutil.NormalRange(rng, pt.Habitability.Min, pt.Habitability.Max), 0, 1),
	}

	p.Resources = g.resources()
	p.Civilization = g.civilization(params.GovernmentType)
	p.Moons = moons(rng, pt, name)

	return p
}

func tectonicActivity(rng *rand.Rand, planetType models.PlanetType) string {
	if planetType == models.PlanetGaseous {
		return models.TectonicNone
	}

	total := 0
	for _, w := range tectonicWeights {
		total += w
	}

	roll := rng.IntN(total)
	current := 0
	for i, w := range tectonicWeights {
		current += w
		if roll < current {
			return tectonicLevels[i]
		}
	}
	return models.TectonicLow
}

// atmosphereFor copies the template of the planet class, switching rocky worlds outside the
// habitable zone to their thick CO2 variant
func atmosphereFor(pt catalog.PlanetType, distance float64, zone models.HabitableZone) models.Atmosphere {
	template := pt.Atmosphere
	if pt.AtmosphereOutsideZone != nil && !zone.Contains(distance) {
		template = *pt.AtmosphereOutsideZone
	}

	return models.Atmosphere{
		Composition: maps.Clone(template.Composition),
		Albedo:      template.Albedo,
		Pressure:    template.Mass,
		Mass:        template.Mass,
		Quality:     template.Quality,
	}
}

func moons(rng *rand.Rand, pt catalog.PlanetType, planetName string) []models.Moon {
	lo, hi := int(pt.Moons.Min), int(pt.Moons.Max)
	count := lo
	if hi > lo {
		count += rng.IntN(hi - lo + 1)
	}

	out := make([]models.Moon, 0, count)
	for j := 0; j < count; j++ {
		out = append(out, models.Moon{
			ID:            mathutil.NewID(rng),
			Name:          planetName + " " + string(rune('a'+j)),
			Mass:          rng.Float64() * 0.1,
			Radius:        rng.Float64() * 0.5,
			Distance:      0.001 + rng.Float64()*0.01,
			OrbitalPeriod: 1 + rng.Float64()*30,
			Composition:   "rocky",
		})
	}
	return out
}
