package exploration

import (
	"math/rand/v2"
	"testing"
	"time"

	"galaxy-server/internal/system"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   string
	}{
		{"east", 100, 0, DirectionEast},
		{"south", 0, 100, DirectionSouth},
		{"west", -100, 0, DirectionWest},
		{"north", 0, -100, DirectionNorth},
		{"boundary 45 is south", 100, 100, DirectionSouth},
		{"boundary -45 is east", 100, -100, DirectionEast},
		{"boundary 135 is west", -100, 100, DirectionWest},
		{"boundary -135 is north", -100, -100, DirectionNorth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(1000, 1000, 1000+tt.dx, 1000+tt.dy); got != tt.want {
				t.Errorf("Direction = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDiscoveryRank(t *testing.T) {
	tests := map[int]string{
		0:   "Novice",
		4:   "Novice",
		5:   "Astronomer",
		10:  "Cartographer",
		24:  "Cartographer",
		25:  "Space Navigator",
		50:  "Stellar Explorer",
		100: "Galactic Pioneer",
		500: "Galactic Pioneer",
	}
	for n, want := range tests {
		if got := DiscoveryRank(n); got != want {
			t.Errorf("DiscoveryRank(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5 min ago"},
		{59 * time.Minute, "59 min ago"},
		{3 * time.Hour, "3 h ago"},
		{30 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("TimeAgo(-%s) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name, starType, query string
		want                  bool
	}{
		{"Kepler Prime", "G", "", true},
		{"Kepler Prime", "G", "kepler", true},
		{"Kepler Prime", "G", "PRIME", true},
		{"Vega", "redDwarf", "dwarf", true},
		{"Kepler Prime", "G", "Keplar", true},
		{"Kepler Prime", "G", "Kepleer", true},
		{"Vega", "A", "Vge", false},
		{"Vega", "A", "Sirius", false},
	}

	for _, tt := range tests {
		if got := MatchesQuery(tt.name, tt.starType, tt.query); got != tt.want {
			t.Errorf("MatchesQuery(%q, %q, %q) = %v, want %v", tt.name, tt.starType, tt.query, got, tt.want)
		}
	}
}

func TestWithinRadius(t *testing.T) {
	if !WithinRadius(0, 0, 1000, 600, 800) {
		t.Error("point on the circle should be inside")
	}
	if WithinRadius(0, 0, 1000, 800, 800) {
		t.Error("box corner should be outside")
	}
}

func summary(id string, owner int, x, y float64) system.Summary {
	return system.Summary{ID: id, OwnerID: owner, Name: id, StarType: "G", X: x, Y: y}
}

func TestRankSearchResults(t *testing.T) {
	candidates := []Candidate{
		{Summary: summary("Alpha Kepler", 2, 0, 0)},
		{Summary: summary("Beta Kepler", 2, 0, 0), DiscoveredByPlayer: true},
		{Summary: summary("Gamma Kepler", 1, 0, 0)},
		{Summary: summary("Vega", 1, 0, 0)},
	}

	got := RankSearchResults(candidates, 1, "kepler", 10)
	want := []string{"Gamma Kepler", "Beta Kepler", "Alpha Kepler"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("result %d = %s, want %s", i, got[i].ID, id)
		}
	}
	if !got[0].Owned || got[1].Owned {
		t.Error("owned flag not set")
	}

	if limited := RankSearchResults(candidates, 1, "", 2); len(limited) != 2 {
		t.Errorf("limit ignored: %d results", len(limited))
	}
}

func TestBuildNearby(t *testing.T) {
	summaries := []system.Summary{
		summary("far", 1, 3500, 1000),
		summary("east", 1, 1500.9, 1000),
		summary("north", 1, 1000, 200),
		summary("edge", 1, 1000, 3000.5),
	}

	got := BuildNearby(summaries, 1000, 1000, 2000)
	if len(got) != 3 {
		t.Fatalf("got %d systems, want 3", len(got))
	}
	if got[0].ID != "east" || got[0].Distance != 500 || got[0].Direction != DirectionEast {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].ID != "north" || got[1].Direction != DirectionNorth {
		t.Errorf("second = %+v", got[1])
	}
	if got[2].ID != "edge" || got[2].Distance != 2000 || got[2].Direction != DirectionSouth {
		t.Errorf("third = %+v", got[2])
	}
}

func TestBuildStats(t *testing.T) {
	stats := BuildStats(40, 10, 3)
	if stats.ExplorationPercentage != 25 || stats.DiscoveryRank != "Cartographer" {
		t.Errorf("stats = %+v", stats)
	}
	if empty := BuildStats(0, 0, 0); empty.ExplorationPercentage != 0 || empty.DiscoveryRank != "Novice" {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestDiscovererName(t *testing.T) {
	row := RecentRow{Summary: summary("s", 2, 0, 0), FirstDiscovererID: 3, FirstDiscovererName: "Altair"}

	if got := DiscovererName(row, 2); got != "You" {
		t.Errorf("owner sees %q", got)
	}
	if got := DiscovererName(row, 3); got != "You" {
		t.Errorf("first discoverer sees %q", got)
	}
	if got := DiscovererName(row, 9); got != "Altair" {
		t.Errorf("stranger sees %q", got)
	}
	row.FirstDiscovererName = ""
	if got := DiscovererName(row, 9); got != "Explorer 3" {
		t.Errorf("fallback = %q", got)
	}
}

func TestRollEvent(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewPCG(3, 4))

	if _, ok := RollEvent(rng, 1, 0, 0, nil, 1, now); ok {
		t.Error("event without discoveries")
	}
	if _, ok := RollEvent(rng, 0, 0, 0, []string{"a"}, 1, now); ok {
		t.Error("event with zero chance")
	}

	durations := map[EventType]time.Duration{
		EventSupernova:   24 * time.Hour,
		EventWormhole:    48 * time.Hour,
		EventNebula:      12 * time.Hour,
		EventAlienSignal: 36 * time.Hour,
	}
	for range 50 {
		e, ok := RollEvent(rng, 1, 100, 200, []string{"a", "b"}, 7, now)
		if !ok {
			t.Fatal("chance 1 must always trigger")
		}
		if e.ExpiresAt.Sub(e.CreatedAt) != durations[e.Type] {
			t.Errorf("%s lasts %s", e.Type, e.ExpiresAt.Sub(e.CreatedAt))
		}
		if e.Type == EventWormhole && len(e.ConnectedRegions) != 2 {
			t.Errorf("wormhole regions = %v", e.ConnectedRegions)
		}
		if len(e.RelatedSystems) != 2 || e.DiscoveredBy == nil || *e.DiscoveredBy != 7 || e.X != 100 {
			t.Errorf("event = %+v", e)
		}
	}
}
