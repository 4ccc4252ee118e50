package civilization

import (
	"math"

	"galaxy-server/internal/models"
)

// ApplyCrisis degrades civ for one crisis. Happiness, stability and population never drop
// below zero, and a civilization whose population reaches zero is marked extinct.
func ApplyCrisis(civ *models.Civilization, crisis models.Crisis) {
	switch crisis.Type {
	case models.CrisisResourceDepletion:
		civ.Happiness -= 20
		civ.Stability -= 15
	case models.CrisisEnvironmentalCollapse:
		civ.Happiness -= 30
		civ.Stability -= 25
		civ.Population = int64(math.Floor(float64(civ.Population) * 0.8))
	}

	civ.Happiness = math.Max(0, civ.Happiness)
	civ.Stability = math.Max(0, civ.Stability)
	if civ.Population <= 0 {
		civ.Population = 0
		civ.Extinct = true
	}
}
