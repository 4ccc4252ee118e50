package exploration

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type eventTemplate struct {
	Type             EventType
	Name             string
	Message          string
	Effect           string
	Radius           float64
	ConnectedRegions []string
	Duration         time.Duration
}

var eventTemplates = []eventTemplate{
	{
		Type:     EventSupernova,
		Name:     "Bright Supernova",
		Message:  "A star has exploded as a supernova. Nearby systems are easier to detect.",
		Effect:   "boost_exploration",
		Radius:   2000,
		Duration: 24 * time.Hour,
	},
	{
		Type:             EventWormhole,
		Name:             "Wormhole",
		Message:          "An interstellar portal has opened, revealing distant systems.",
		Effect:           "reveal_distant",
		ConnectedRegions: []string{"alpha", "beta"},
		Duration:         48 * time.Hour,
	},
	{
		Type:     EventNebula,
		Name:     "Mysterious Nebula",
		Message:  "An interstellar nebula hides the systems in this region.",
		Effect:   "hide_systems",
		Radius:   1500,
		Duration: 12 * time.Hour,
	},
	{
		Type:     EventAlienSignal,
		Name:     "Alien Signal",
		Message:  "A signal of artificial origin has been detected. There could be intelligent life.",
		Effect:   "reveal_civilizations",
		Duration: 36 * time.Hour,
	},
}

// RollEvent triggers an event with probability chance when something was discovered. The event
// is centred on the explored area and lists the systems that were found.
func RollEvent(rng *rand.Rand, chance float64, x, y float64, related []string, playerID int, now time.Time) (*Event, bool) {
	if len(related) == 0 || rng.Float64() >= chance {
		return nil, false
	}

	t := eventTemplates[rng.IntN(len(eventTemplates))]
	regions := append([]string{}, t.ConnectedRegions...)
	discoveredBy := playerID

	return &Event{
		ID:               uuid.NewString(),
		Type:             t.Type,
		Name:             t.Name,
		Message:          t.Message,
		Effect:           t.Effect,
		X:                x,
		Y:                y,
		Radius:           t.Radius,
		ConnectedRegions: regions,
		RelatedSystems:   append([]string{}, related...),
		DiscoveredBy:     &discoveredBy,
		CreatedAt:        now,
		ExpiresAt:        now.Add(t.Duration),
	}, true
}
