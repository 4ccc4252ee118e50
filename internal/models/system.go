package models

import "time"

type HabitableZone struct {
	Inner float64 `json:"inner"`
	Outer float64 `json:"outer"`
	Width float64 `json:"width"`
}

func (hz HabitableZone) Contains(distance float64) bool {
	return distance >= hz.Inner && distance <= hz.Outer
}

type Gravitational struct {
	HillSphere     float64 `json:"hillSphere"`
	StabilityIndex float64 `json:"stabilityIndex"`
}

type MinorBody struct {
	Type            string  `json:"type"`
	InnerRadius     float64 `json:"innerRadius"`
	OuterRadius     float64 `json:"outerRadius"`
	ResourceDensity float64 `json:"resourceDensity"`
}

// StarSystem is the snapshot produced by the generator and transformed by the time advance.
// Age counts the galactic years simulated since creation.
type StarSystem struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	PrimaryStar             Star            `json:"primaryStar"`
	Companions              []CompanionStar `json:"companions"`
	MultipleSystem          string          `json:"multipleSystem"`
	HabitableZone           HabitableZone   `json:"habitableZone"`
	HabitableZonePreference string          `json:"habitableZonePreference"`
	GovernmentType          string          `json:"governmentType"`
	Gravitational           Gravitational   `json:"gravitational"`
	Planets                 []Planet        `json:"planets"`
	MinorBodies             []MinorBody     `json:"minorBodies"`
	CreatedAt               time.Time       `json:"createdAt"`
	Age                     int64           `json:"age"`
}

func (s *StarSystem) PlanetByID(id string) (*Planet, bool) {
	for i := range s.Planets {
		if s.Planets[i].ID == id {
			return &s.Planets[i], true
		}
	}
	return nil, false
}

func (s *StarSystem) InhabitedPlanets() int {
	count := 0
	for i := range s.Planets {
		if s.Planets[i].Inhabited() {
			count++
		}
	}
	return count
}
