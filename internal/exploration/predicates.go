package exploration

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

const (
	DirectionNorth = "north"
	DirectionSouth = "south"
	DirectionEast  = "east"
	DirectionWest  = "west"

	fuzzyMinQueryLength = 4
	fuzzyMaxDistance    = 2
)

func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func WithinRadius(cx, cy, radius, x, y float64) bool {
	return Distance(cx, cy, x, y) <= radius
}

// Direction is the cardinal direction from (fromX, fromY) to (toX, toY). The map's y axis points
// south.
func Direction(fromX, fromY, toX, toY float64) string {
	angle := math.Atan2(toY-fromY, toX-fromX) * 180 / math.Pi

	switch {
	case angle >= -45 && angle < 45:
		return DirectionEast
	case angle >= 45 && angle < 135:
		return DirectionSouth
	case angle >= 135 || angle < -135:
		return DirectionWest
	default:
		return DirectionNorth
	}
}

type rank struct {
	min  int
	name string
}

var ranks = []rank{
	{100, "Galactic Pioneer"},
	{50, "Stellar Explorer"},
	{25, "Space Navigator"},
	{10, "Cartographer"},
	{5, "Astronomer"},
}

func DiscoveryRank(discovered int) string {
	for _, r := range ranks {
		if discovered >= r.min {
			return r.name
		}
	}
	return "Novice"
}

func TimeAgo(then, now time.Time) string {
	diff := now.Sub(then)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%d h ago", hours)
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// MatchesQuery is a case insensitive substring match on the name or star type. Longer queries
// also accept names within a small edit distance, so "Kepleer" finds "Kepler".
func MatchesQuery(name, starType, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	n := strings.ToLower(name)
	if strings.Contains(n, q) || strings.Contains(strings.ToLower(starType), q) {
		return true
	}
	if len(q) < fuzzyMinQueryLength {
		return false
	}

	if levenshtein.ComputeDistance(n, q) <= fuzzyMaxDistance {
		return true
	}
	for _, word := range strings.Fields(n) {
		if levenshtein.ComputeDistance(word, q) <= fuzzyMaxDistance {
			return true
		}
	}
	return false
}
