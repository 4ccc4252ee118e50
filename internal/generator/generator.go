// Package generator synthesises complete star system snapshots from a handful of player
// parameters. All randomness comes from the supplied *rand.Rand, so a seeded source reproduces
// a system exactly, identifiers included.
package generator

import (
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"time"

	"galaxy-server/internal/catalog"
	"galaxy-server/internal/mathutil"
	"galaxy-server/internal/models"
	"galaxy-server/internal/physics"
)

const (
	baseOrbit       = 0.4 // AU
	orbitMultiplier = 1.7
)

type Generator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// NewRand returns a source seeded with seed, or a randomly seeded one when seed is nil
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate validates params and builds a new system snapshot created at now
func (g *Generator) Generate(rng *rand.Rand, params Params, now time.Time) (*models.StarSystem, error) {
	params = params.WithDefaults()
	if err := params.Validate(g.catalog); err != nil {
		return nil, err
	}

	ageYears := params.StarAge * 1e6
	primary := physics.DeriveStar(params.StarType, params.StarMass, ageYears)
	zone := physics.HabitableZone(primary.Luminosity)

	system := &models.StarSystem{
		ID:                      mathutil.NewID(rng),
		Name:                    params.Name,
		PrimaryStar:             primary,
		MultipleSystem:          params.MultipleSystem,
		HabitableZone:           zone,
		HabitableZonePreference: params.HabitableZone,
		GovernmentType:          params.GovernmentType,
		CreatedAt:               now.UTC(),
	}

	system.Companions = g.companions(rng, params, ageYears)
	system.Planets = g.planets(rng, params, primary, zone)
	system.MinorBodies = g.minorBodies()
	system.Gravitational = models.Gravitational{
		HillSphere:     physics.HillSphere(physics.ToSolarMasses(1), primary.Mass, 1),
		StabilityIndex: StabilityIndex(primary, system.Planets),
	}

	return system, nil
}

// OrbitalDistance places planet index on a Titius-Bode style progression, with the first
// planet pinned at 0.4 AU
func OrbitalDistance(index int) float64 {
	if index == 0 {
		return baseOrbit
	}
	return baseOrbit + orbitMultiplier*math.Pow(2, float64(index-1))
}

// StabilityIndex starts at 1, loses 20% per 2:1 or 3:1 resonance and half per unstable orbit,
// and never drops below 0.1
func StabilityIndex(star models.Star, planets []models.Planet) float64 {
	stability := 1.0

	for _, r := range physics.FindOrbitalResonances(planets) {
		if r.Dangerous() {
			stability *= 0.8
		}
	}
	for _, p := range planets {
		if !physics.IsOrbitStable(p, star, planets) {
			stability *= 0.5
		}
	}
	return math.Max(0.1, stability)
}

func (g *Generator) companions(rng *rand.Rand, params Params, ageYears float64) []models.CompanionStar {
	kind, _ := g.catalog.MultipleSystem(params.MultipleSystem)
	if kind.Companions == 0 || len(g.catalog.CompanionTypes) == 0 {
		return []models.CompanionStar{}
	}

	companions := make([]models.CompanionStar, 0, kind.Companions)
	for i := 0; i < kind.Companions; i++ {
		starType := g.catalog.CompanionTypes[rng.IntN(len(g.catalog.CompanionTypes))]
		mass := params.StarMass * (0.2 + rng.Float64()*0.5)
		distance := 10 + rng.Float64()*100

		companions = append(companions, models.CompanionStar{
			Star:          physics.DeriveStar(starType, mass, ageYears),
			OrbitDistance: distance,
		})
	}
	return companions
}

func (g *Generator) minorBodies() []models.MinorBody {
	bodies := make([]models.MinorBody, 0, len(g.catalog.Belts))
	for _, b := range g.catalog.Belts {
		bodies = append(bodies, models.MinorBody{
			Type:            b.Key,
			InnerRadius:     b.InnerRadius,
			OuterRadius:     b.OuterRadius,
			ResourceDensity: b.ResourceDensity,
		})
	}
	return bodies
}

func (g *Generator) resources() map[string]models.Resource {
	resources := make(map[string]models.Resource, len(g.catalog.Resources))
	for _, t := range g.catalog.Resources {
		r := models.Resource{
			Current:             t.Initial,
			Initial:             t.Initial,
			DepletionRate:       t.DepletionRate,
			RecyclingEfficiency: t.RecyclingEfficiency,
			Consumption:         t.Consumption,
		}
		if t.DepletionRate > 0 {
			r.YearsRemaining = math.Floor(t.Initial / t.DepletionRate)
		}
		if len(t.Sources) > 0 {
			r.Sources = make(map[string]models.EnergySource, len(t.Sources))
			for name, s := range t.Sources {
				r.Sources[name] = models.EnergySource{Share: s.Share, Efficiency: s.Efficiency}
			}
		}
		resources[t.Key] = r
	}
	return resources
}

func (g *Generator) civilization(governmentType string) *models.Civilization {
	gov, _ := g.catalog.Government(governmentType)

	return &models.Civilization{
		Era:        "pre_industrial",
		Population: 1000000,
		GrowthRate: 1.02,
		Happiness:  70,
		Stability:  75,
		Government: models.Government{
			Type: governmentType,
			Laws: maps.Clone(gov.Laws),
		},
		Technology: map[string]float64{
			"energy":        1.0,
			"computing":     1.0,
			"biotechnology": 1.0,
			"spaceTravel":   1.0,
			"weapons":       1.0,
			"medicine":      1.0,
		},
		Kardashev: models.Kardashev{
			Level:             0.1,
			EnergyConsumption: 1e12,
			ProgressToNext:    0.1,
		},
	}
}

func planetName(systemName string, index int) string {
	return fmt.Sprintf("%s %s", systemName, mathutil.Romanize(index+1))
}
