package exploration

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"galaxy-server/internal/generator"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/system"
)

const (
	PopularLimit        = 10
	RecentLimit         = 5
	SearchLimit         = 50
	searchCandidatePool = 500
)

type Discoverers interface {
	AddDiscoverer(ctx context.Context, systemID string, playerID int) (bool, error)
}

type Service struct {
	repo        *Repository
	discoverers Discoverers
	stats       system.StatsRecorder
	sim         config.SimulationConfig
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(repo *Repository, discoverers Discoverers, stats system.StatsRecorder, cfg *config.Config, logger *slog.Logger) *Service {
	logger.Debug("Initializing exploration service")

	return &Service{
		repo:        repo,
		discoverers: discoverers,
		stats:       stats,
		sim:         cfg.Simulation,
		logger:      logger,
		now:         time.Now,
	}
}

// Explore adds playerID as a discoverer of every foreign system within radius of (x, y) that
// they had not found yet. A successful expedition may trigger a galactic event.
func (s *Service) Explore(ctx context.Context, playerID int, req ExploreRequest) (*ExploreResult, error) {
	radius := req.Radius
	if radius == 0 {
		radius = s.sim.ExploreRadius
	}
	if radius < 0 || radius > s.sim.GalaxySize {
		return nil, errors.Validationf("radius must be between 0 and %g", s.sim.GalaxySize)
	}

	logger := s.logger.With(
		"component", "exploration_service",
		"operation", "explore",
		"player_id", playerID,
		"x", req.X,
		"y", req.Y,
		"radius", radius,
	)

	candidates, err := s.repo.ExplorableInBox(ctx, playerID, req.X, req.Y, radius)
	if err != nil {
		return nil, err
	}

	result := &ExploreResult{Discovered: []system.Summary{}}
	for _, c := range candidates {
		if !WithinRadius(req.X, req.Y, radius, c.X, c.Y) {
			continue
		}
		added, err := s.discoverers.AddDiscoverer(ctx, c.ID, playerID)
		if err != nil {
			logger.Warn("Failed to record discovery", "system_id", c.ID, "error", err)
			continue
		}
		if !added {
			continue
		}
		c.Status = system.StatusDiscovered
		c.DiscovererCount++
		result.Discovered = append(result.Discovered, c)
	}

	if len(result.Discovered) > 0 {
		s.recordStat(ctx, logger, playerID, len(result.Discovered))
	}

	ids := make([]string, len(result.Discovered))
	for i, d := range result.Discovered {
		ids[i] = d.ID
	}
	if event, ok := RollEvent(generator.NewRand(nil), s.sim.EventChance, req.X, req.Y, ids, playerID, s.now()); ok {
		if err := s.repo.CreateEvent(ctx, event); err != nil {
			logger.Warn("Failed to store galactic event", "event_type", event.Type, "error", err)
		}
		logger.Info("Galactic event triggered", "event_id", event.ID, "event_type", event.Type)
		result.Event = event
	}

	logger.Info("Area explored", "candidates", len(candidates), "discovered", len(result.Discovered))
	return result, nil
}

func (s *Service) Search(ctx context.Context, playerID int, filters SearchFilters) ([]SearchResult, error) {
	if filters.MinPlanets < 0 {
		return nil, errors.Validation("minPlanets must not be negative")
	}

	candidates, err := s.repo.SearchCandidates(ctx, playerID, filters.StarType, filters.MinPlanets, searchCandidatePool)
	if err != nil {
		return nil, err
	}
	return RankSearchResults(candidates, playerID, filters.Query, SearchLimit), nil
}

// RankSearchResults keeps the candidates matching query, the player's own systems first and then
// the ones they discovered
func RankSearchResults(candidates []Candidate, playerID int, query string, limit int) []SearchResult {
	results := []SearchResult{}
	for _, c := range candidates {
		if MatchesQuery(c.Name, c.StarType, query) {
			results = append(results, SearchResult{Candidate: c, Owned: c.OwnerID == playerID})
		}
	}

	relevance := func(r SearchResult) int {
		switch {
		case r.Owned:
			return 0
		case r.DiscoveredByPlayer:
			return 1
		default:
			return 2
		}
	}
	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return cmp.Compare(relevance(a), relevance(b))
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (s *Service) Popular(ctx context.Context) ([]PopularSystem, error) {
	summaries, err := s.repo.Popular(ctx, PopularLimit)
	if err != nil {
		return nil, err
	}

	popular := make([]PopularSystem, len(summaries))
	for i, sum := range summaries {
		popular[i] = PopularSystem{Summary: sum, Popularity: sum.DiscovererCount}
	}
	return popular, nil
}

func (s *Service) Recent(ctx context.Context, playerID int) ([]RecentSystem, error) {
	rows, err := s.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	recent := make([]RecentSystem, len(rows))
	for i, row := range rows {
		recent[i] = RecentSystem{
			Summary:        row.Summary,
			DiscoveredAt:   row.DiscoveredAt,
			DiscovererName: DiscovererName(row, playerID),
			TimeAgo:        TimeAgo(row.DiscoveredAt, now),
		}
	}
	return recent, nil
}

// DiscovererName is "You" when the viewer owns the system or found it first
func DiscovererName(row RecentRow, viewerID int) string {
	if row.OwnerID == viewerID || row.FirstDiscovererID == viewerID {
		return "You"
	}
	if row.FirstDiscovererName != "" {
		return row.FirstDiscovererName
	}
	return fmt.Sprintf("Explorer %d", row.FirstDiscovererID)
}

func (s *Service) Nearby(ctx context.Context, x, y, maxDistance float64) ([]NearbySystem, error) {
	if maxDistance == 0 {
		maxDistance = s.sim.NearbyDistance
	}
	if maxDistance < 0 || maxDistance > s.sim.GalaxySize {
		return nil, errors.Validationf("maxDistance must be between 0 and %g", s.sim.GalaxySize)
	}

	summaries, err := s.repo.InBox(ctx, x, y, maxDistance)
	if err != nil {
		return nil, err
	}
	return BuildNearby(summaries, x, y, maxDistance), nil
}

// BuildNearby measures each system from (x, y) in whole units, drops the ones beyond maxDistance
// and sorts the rest closest first
func BuildNearby(summaries []system.Summary, x, y, maxDistance float64) []NearbySystem {
	nearby := []NearbySystem{}
	for _, sum := range summaries {
		d := math.Floor(Distance(x, y, sum.X, sum.Y))
		if d > maxDistance {
			continue
		}
		nearby = append(nearby, NearbySystem{
			Summary:   sum,
			Distance:  int(d),
			Direction: Direction(x, y, sum.X, sum.Y),
		})
	}

	slices.SortStableFunc(nearby, func(a, b NearbySystem) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return nearby
}

func (s *Service) Stats(ctx context.Context, playerID int) (*Stats, error) {
	total, discovered, created, err := s.repo.Counts(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return BuildStats(total, discovered, created), nil
}

func BuildStats(total, discovered, created int) *Stats {
	stats := &Stats{
		TotalSystems:   total,
		UserDiscovered: discovered,
		UserCreated:    created,
		DiscoveryRank:  DiscoveryRank(discovered),
	}
	if total > 0 {
		stats.ExplorationPercentage = float64(discovered) / float64(total) * 100
	}
	return stats
}

func (s *Service) ActiveEvents(ctx context.Context) ([]Event, error) {
	return s.repo.ActiveEvents(ctx, s.now())
}

// RunEventCleanup deletes expired galactic events every interval until done is closed
func (s *Service) RunEventCleanup(interval time.Duration, done <-chan struct{}) {
	logger := s.logger.With("component", "exploration_service", "operation", "event_cleanup")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			n, err := s.repo.DeleteExpiredEvents(ctx, s.now())
			cancel()
			if err != nil {
				logger.Warn("Failed to delete expired galactic events", "error", err)
				continue
			}
			if n > 0 {
				logger.Debug("Expired galactic events removed", "count", n)
			}
		}
	}
}

func (s *Service) recordStat(ctx context.Context, logger *slog.Logger, playerID int, delta int) {
	if s.stats == nil {
		return
	}
	if err := s.stats.IncrementStat(ctx, playerID, system.StatSystemsDiscovered, delta); err != nil {
		logger.Warn("Failed to update player statistic", "stat", system.StatSystemsDiscovered, "error", err)
	}
}
