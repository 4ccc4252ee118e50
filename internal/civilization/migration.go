package civilization

import (
	"fmt"
	"math"
	"sort"

	"galaxy-server/internal/models"
)

// Horizons are the look-ahead windows, in years, of CheckMigrationNeeded
var Horizons = []int{100, 1000, 10000}

const (
	habitabilityDecline = 0.0001 // per year
	collapseThreshold   = 0.3
)

type ResourceCrisis struct {
	Resource       string
	Severity       models.Severity
	YearsRemaining float64
}

type Projection struct {
	Years                 int
	ResourceCrises        []ResourceCrisis
	ProjectedHabitability float64
	EnvironmentalCollapse bool
}

// ProjectFutureState reports every resource that runs out within years, in name order, and
// whether linear habitability decline crosses the collapse threshold
func ProjectFutureState(p models.Planet, years int) Projection {
	projection := Projection{Years: years}

	names := make([]string, 0, len(p.Resources))
	for name := range p.Resources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := p.Resources[name]
		if r.Current <= 0 || r.DepletionRate <= 0 {
			continue
		}
		remaining := r.Current / r.DepletionRate
		if remaining > float64(years) {
			continue
		}
		projection.ResourceCrises = append(projection.ResourceCrises, ResourceCrisis{
			Resource:       name,
			Severity:       severityFor(remaining),
			YearsRemaining: remaining,
		})
	}

	if h := p.Conditions.Habitability; h > 0 {
		projection.ProjectedHabitability = h - habitabilityDecline*float64(years)
		projection.EnvironmentalCollapse = projection.ProjectedHabitability < collapseThreshold
	}

	return projection
}

func severityFor(yearsRemaining float64) models.Severity {
	switch {
	case yearsRemaining <= 100:
		return models.SeverityCritical
	case yearsRemaining <= 1000:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}

// CheckMigrationNeeded projects the planet over every horizon and returns one crisis per
// depleting resource and per environmental collapse, tagged with currentYear
func CheckMigrationNeeded(p models.Planet, currentYear int) []models.Crisis {
	var crises []models.Crisis

	for _, horizon := range Horizons {
		projection := ProjectFutureState(p, horizon)

		for _, rc := range projection.ResourceCrises {
			remaining := int(math.Floor(rc.YearsRemaining))
			crises = append(crises, models.Crisis{
				Type:           models.CrisisResourceDepletion,
				Severity:       rc.Severity,
				PlanetID:       p.ID,
				PlanetName:     p.Name,
				Resource:       rc.Resource,
				Horizon:        horizon,
				YearsRemaining: remaining,
				Year:           currentYear,
				Message:        fmt.Sprintf("%s on %s will run out in ~%d years", rc.Resource, p.Name, remaining),
			})
		}

		if projection.EnvironmentalCollapse {
			crises = append(crises, models.Crisis{
				Type:           models.CrisisEnvironmentalCollapse,
				Severity:       models.SeverityCritical,
				PlanetID:       p.ID,
				PlanetName:     p.Name,
				Horizon:        horizon,
				YearsRemaining: horizon,
				Year:           currentYear,
				Message:        fmt.Sprintf("habitability on %s turns critical within ~%d years", p.Name, horizon),
			})
		}
	}

	return crises
}
