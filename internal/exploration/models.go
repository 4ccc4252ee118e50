package exploration

import (
	"time"

	"galaxy-server/internal/system"
)

type EventType string

const (
	EventSupernova   EventType = "supernova"
	EventWormhole    EventType = "wormhole"
	EventNebula      EventType = "nebula"
	EventAlienSignal EventType = "alien_signal"
)

// Event is a temporary galactic phenomenon triggered by exploration
type Event struct {
	ID               string    `json:"id"`
	Type             EventType `json:"type"`
	Name             string    `json:"name"`
	Message          string    `json:"message"`
	Effect           string    `json:"effect"`
	X                float64   `json:"x"`
	Y                float64   `json:"y"`
	Radius           float64   `json:"radius"`
	ConnectedRegions []string  `json:"connected_regions"`
	RelatedSystems   []string  `json:"related_systems"`
	DiscoveredBy     *int      `json:"discovered_by"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

type ExploreRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type ExploreResult struct {
	Discovered []system.Summary `json:"discovered"`
	Event      *Event           `json:"event,omitempty"`
}

type SearchFilters struct {
	Query      string
	StarType   string
	MinPlanets int
}

// Candidate is a system as seen by one player
type Candidate struct {
	system.Summary
	DiscoveredByPlayer bool `json:"discovered_by_player"`
}

type SearchResult struct {
	Candidate
	Owned bool `json:"owned"`
}

type PopularSystem struct {
	system.Summary
	Popularity int `json:"popularity"`
}

type RecentSystem struct {
	system.Summary
	DiscoveredAt   time.Time `json:"discovered_at"`
	DiscovererName string    `json:"discoverer_name"`
	TimeAgo        string    `json:"time_ago"`
}

// RecentRow is what the repository knows about a recent discovery before it is presented
type RecentRow struct {
	system.Summary
	DiscoveredAt        time.Time
	FirstDiscovererID   int
	FirstDiscovererName string
}

type NearbySystem struct {
	system.Summary
	Distance  int    `json:"distance"`
	Direction string `json:"direction"`
}

type Stats struct {
	TotalSystems          int     `json:"total_systems"`
	UserDiscovered        int     `json:"user_discovered"`
	UserCreated           int     `json:"user_created"`
	ExplorationPercentage float64 `json:"exploration_percentage"`
	DiscoveryRank         string  `json:"discovery_rank"`
}
