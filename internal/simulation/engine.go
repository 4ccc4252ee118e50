// Package simulation advances star system snapshots through galactic time.
package simulation

import (
	"math"

	"galaxy-server/internal/civilization"
	"galaxy-server/internal/mathutil"
	"galaxy-server/internal/models"
	"galaxy-server/internal/physics"
	"galaxy-server/internal/shared/errors"
)

const (
	temperatureDrift    = 0.001 // °C per year
	brighteningFactor   = 1.1
	brighteningPenalty  = 0.01  // habitability per century
	industrialPenalty   = 0.005 // habitability per century
	industrialThreshold = 0.5   // kardashev level
)

type Engine struct {
	maxYears int
}

// NewEngine returns an engine that refuses advances longer than maxYears; zero means no limit
func NewEngine(maxYears int) *Engine {
	return &Engine{maxYears: maxYears}
}

// AdvanceSystem moves a copy of snapshot forward by years and returns it together with the
// crises raised on its planets. snapshot is never modified.
func (e *Engine) AdvanceSystem(snapshot *models.StarSystem, years int, currentYear int) (*models.StarSystem, []models.Crisis, error) {
	if snapshot == nil {
		return nil, nil, errors.Validation("snapshot is required")
	}
	if years < 0 {
		return nil, nil, errors.Validationf("years must not be negative, got %d", years)
	}
	if e.maxYears > 0 && years > e.maxYears {
		return nil, nil, errors.Validationf("years must be at most %d", e.maxYears)
	}

	next := snapshot.Clone()
	crises := []models.Crisis{}
	if years == 0 {
		return next, crises, nil
	}

	star := next.PrimaryStar
	brightening := physics.Luminosity(star.Mass, star.Age+float64(years)) > star.Luminosity*brighteningFactor

	for i := range next.Planets {
		planet := &next.Planets[i]
		crises = append(crises, advancePlanet(planet, years, currentYear)...)
		driftEnvironment(planet, years, brightening)
	}

	next.PrimaryStar = physics.DeriveStar(star.Type, star.Mass, star.Age+float64(years))
	for i := range next.Companions {
		c := next.Companions[i]
		next.Companions[i].Star = physics.DeriveStar(c.Type, c.Mass, c.Age+float64(years))
	}
	next.HabitableZone = physics.HabitableZone(next.PrimaryStar.Luminosity)
	next.Age += int64(years)

	return next, crises, nil
}

// advancePlanet grows the civilization of p, consumes its resources and applies the crises
// the new state is heading towards
func advancePlanet(p *models.Planet, years int, currentYear int) []models.Crisis {
	civ := p.Civilization
	if civ == nil || civ.Extinct {
		return nil
	}

	rate := civilization.EvolutionRate(*p)
	span := float64(years)

	gain := rate * span / 100
	civ.Kardashev.Level += gain
	civ.Kardashev.EnergyConsumption = math.Min(civ.Kardashev.EnergyConsumption*math.Pow(10, 10*gain), math.MaxFloat64)
	civ.Kardashev.ProgressToNext = civ.Kardashev.Level - math.Floor(civ.Kardashev.Level)

	population := math.Floor(float64(civ.Population) * math.Pow(civ.GrowthRate, span))
	civ.Population = int64(math.Min(population, models.MaxPopulation))

	for domain, level := range civ.Technology {
		civ.Technology[domain] = level + rate*span/50
	}

	for name, r := range p.Resources {
		r.Current = math.Max(0, r.Current-r.DepletionRate*span)
		if r.DepletionRate > 0 {
			r.YearsRemaining = math.Floor(r.Current / r.DepletionRate)
		}
		p.Resources[name] = r
	}

	crises := civilization.CheckMigrationNeeded(*p, currentYear)
	for _, c := range crises {
		civilization.ApplyCrisis(civ, c)
	}
	return crises
}

func driftEnvironment(p *models.Planet, years int, brightening bool) {
	span := float64(years)
	p.Conditions.Temperature.Surface += temperatureDrift * span

	habitability := p.Conditions.Habitability
	if brightening {
		habitability -= brighteningPenalty * span / 100
	}
	if p.Civilization != nil && p.Civilization.Kardashev.Level > industrialThreshold {
		habitability -= industrialPenalty * span / 100
	}
	p.Conditions.Habitability = mathutil.Clamp(habitability, 0, 1)
}
