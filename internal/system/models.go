package system

import (
	"time"

	"galaxy-server/internal/dynamics"
	"galaxy-server/internal/models"
	"galaxy-server/internal/physics"
)

type Status string

const (
	StatusClaimed    Status = "claimed"
	StatusDiscovered Status = "discovered"
)

// Summary is the persistence metadata of a system, without its snapshot
type Summary struct {
	ID              string    `json:"id"`
	OwnerID         int       `json:"owner_id"`
	Name            string    `json:"name"`
	StarType        string    `json:"star_type"`
	PlanetCount     int       `json:"planet_count"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	Quadrant        string    `json:"quadrant"`
	Status          Status    `json:"status"`
	Version         int       `json:"version"`
	DiscovererCount int       `json:"discoverer_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Record struct {
	Summary
	Snapshot *models.StarSystem `json:"snapshot"`
}

type AdvanceResult struct {
	System *Record         `json:"system"`
	Crises []models.Crisis `json:"crises"`
	Years  int             `json:"years"`
}

type CometReport struct {
	Comets     []dynamics.Comet           `json:"comets"`
	Positions  []dynamics.TrackedPosition `json:"positions"`
	Collisions []dynamics.Collision       `json:"collisions"`
	Time       float64                    `json:"time"`
}

type ResonanceReport struct {
	Resonances      []physics.Resonance  `json:"resonances"`
	UnstablePlanets []string             `json:"unstable_planets"`
	StabilityIndex  float64              `json:"stability_index"`
	HabitableZone   physics.EvolvingZone `json:"habitable_zone"`
}
