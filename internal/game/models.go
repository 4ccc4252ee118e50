package game

import (
	"galaxy-server/internal/models"
)

// PlayerStats aggregates the civilizations across every system a player owns
type PlayerStats struct {
	Systems          int     `json:"systems"`
	TotalPlanets     int     `json:"total_planets"`
	TotalPopulation  int64   `json:"total_population"`
	AverageKardashev float64 `json:"average_kardashev"`
}

type State struct {
	GalacticYear int         `json:"galactic_year"`
	Stats        PlayerStats `json:"stats"`
}

type AdvanceRequest struct {
	Years int `json:"years"`
}

type AdvanceResult struct {
	GalacticYear int             `json:"galactic_year"`
	Years        int             `json:"years"`
	Advanced     []string        `json:"advanced"`
	Failed       []string        `json:"failed"`
	Crises       []models.Crisis `json:"crises"`
}
