package system

import (
	"context"
	"log/slog"
	"time"

	"galaxy-server/internal/dynamics"
	"galaxy-server/internal/generator"
	"galaxy-server/internal/physics"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/simulation"
)

// Statistic names understood by StatsRecorder
const (
	StatWorldsCreated        = "worlds_created"
	StatCivilizationsEvolved = "civilizations_evolved"
	StatSystemsDiscovered    = "systems_discovered"
)

// StatsRecorder bumps a player statistic; failures are logged and never surface to the caller
type StatsRecorder interface {
	IncrementStat(ctx context.Context, playerID int, stat string, delta int) error
}

type Service struct {
	repo      *Repository
	generator *generator.Generator
	engine    *simulation.Engine
	locker    Locker
	stats     StatsRecorder
	sim       config.SimulationConfig
	lockTTL   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(repo *Repository, gen *generator.Generator, engine *simulation.Engine, locker Locker, stats StatsRecorder, cfg *config.Config, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	return &Service{
		repo:      repo,
		generator: gen,
		engine:    engine,
		locker:    locker,
		stats:     stats,
		sim:       cfg.Simulation,
		lockTTL:   cfg.Redis.LockTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateSystem generates a system from params, places it on the galaxy map and stores it for ownerID
func (s *Service) CreateSystem(ctx context.Context, ownerID int, params generator.Params) (*Record, error) {
	logger := s.logger.With("component", "system_service", "operation", "create_system", "owner_id", ownerID)

	rng := generator.NewRand(params.Seed)
	snapshot, err := s.generator.Generate(rng, params, s.now())
	if err != nil {
		return nil, err
	}

	x, y := RandomCoordinates(rng, s.sim)
	rec := &Record{
		Summary: Summary{
			ID:          snapshot.ID,
			OwnerID:     ownerID,
			Name:        snapshot.Name,
			StarType:    snapshot.PrimaryStar.Type,
			PlanetCount: len(snapshot.Planets),
			X:           x,
			Y:           y,
			Quadrant:    Quadrant(x, y, s.sim.GalaxySize),
			Status:      StatusClaimed,
		},
		Snapshot: snapshot,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.recordStat(ctx, logger, ownerID, StatWorldsCreated, 1)
	if inhabited := snapshot.InhabitedPlanets(); inhabited > 0 {
		s.recordStat(ctx, logger, ownerID, StatCivilizationsEvolved, inhabited)
	}

	logger.Info("Star system created",
		"system_id", rec.ID,
		"name", rec.Name,
		"star_type", rec.StarType,
		"planets", rec.PlanetCount,
		"quadrant", rec.Quadrant,
	)
	return rec, nil
}

// GetSystem returns the system if playerID owns or has discovered it
func (s *Service) GetSystem(ctx context.Context, playerID int, id string) (*Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID == playerID {
		return rec, nil
	}

	discovered, err := s.repo.IsDiscoverer(ctx, id, playerID)
	if err != nil {
		return nil, err
	}
	if !discovered {
		return nil, errors.Forbiddenf("star system %s has not been discovered by this player", id)
	}
	return rec, nil
}

func (s *Service) ListOwned(ctx context.Context, ownerID int) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// AdvanceSystem moves one owned system forward by years under the system lease and stores the
// result with a version check
func (s *Service) AdvanceSystem(ctx context.Context, ownerID int, id string, years, currentYear int) (*AdvanceResult, error) {
	logger := s.logger.With(
		"component", "system_service",
		"operation", "advance_system",
		"system_id", id,
		"years", years,
	)

	release, err := s.locker.Acquire(ctx, "system:"+id, s.lockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, errors.Forbiddenf("star system %s is owned by another player", id)
	}

	next, crises, err := s.engine.AdvanceSystem(rec.Snapshot, years, currentYear)
	if err != nil {
		return nil, err
	}

	version, err := s.repo.UpdateSnapshot(ctx, id, rec.Version, next)
	if err != nil {
		return nil, err
	}
	rec.Snapshot = next
	rec.Version = version

	logger.Info("Star system advanced", "crises", len(crises), "version", version)
	return &AdvanceResult{System: rec, Crises: crises, Years: years}, nil
}

// Comets spawns count comets around the system, places them and its planets at simTime years
// and checks for impacts. Nothing is persisted.
func (s *Service) Comets(ctx context.Context, playerID int, id string, count int, simTime float64, year int) (*CometReport, error) {
	if count < 1 || count > s.sim.MaxCometsPerRequest {
		return nil, errors.Validationf("count must be between 1 and %d", s.sim.MaxCometsPerRequest)
	}

	rec, err := s.GetSystem(ctx, playerID, id)
	if err != nil {
		return nil, err
	}

	rng := generator.NewRand(nil)
	report := &CometReport{Time: simTime}

	cometBodies := make([]dynamics.Body, 0, count)
	for i := 0; i < count; i++ {
		comet := dynamics.GenerateComet(rng, rec.Snapshot.PrimaryStar, year)
		report.Comets = append(report.Comets, comet)
		cometBodies = append(cometBodies, comet.Body())
	}

	planetBodies := make([]dynamics.Body, 0, len(rec.Snapshot.Planets))
	for _, p := range rec.Snapshot.Planets {
		planetBodies = append(planetBodies, dynamics.PlanetBody(p))
	}

	cometPositions := dynamics.SimulateOrbitalMotion(cometBodies, simTime)
	planetPositions := dynamics.SimulateOrbitalMotion(planetBodies, simTime)

	report.Positions = append(cometPositions, planetPositions...)
	report.Collisions = dynamics.CheckCollisions(rng, cometPositions, planetPositions, simTime)
	if report.Collisions == nil {
		report.Collisions = []dynamics.Collision{}
	}
	return report, nil
}

func (s *Service) Resonances(ctx context.Context, playerID int, id string) (*ResonanceReport, error) {
	rec, err := s.GetSystem(ctx, playerID, id)
	if err != nil {
		return nil, err
	}

	snapshot := rec.Snapshot
	report := &ResonanceReport{
		Resonances:      physics.FindOrbitalResonances(snapshot.Planets),
		UnstablePlanets: []string{},
		StabilityIndex:  generator.StabilityIndex(snapshot.PrimaryStar, snapshot.Planets),
		HabitableZone:   physics.EvolvingHabitableZone(snapshot.PrimaryStar.Mass, snapshot.PrimaryStar.Age),
	}
	if report.Resonances == nil {
		report.Resonances = []physics.Resonance{}
	}
	for _, p := range snapshot.Planets {
		if !physics.IsOrbitStable(p, snapshot.PrimaryStar, snapshot.Planets) {
			report.UnstablePlanets = append(report.UnstablePlanets, p.ID)
		}
	}
	return report, nil
}

func (s *Service) recordStat(ctx context.Context, logger *slog.Logger, playerID int, stat string, delta int) {
	if s.stats == nil {
		return
	}
	if err := s.stats.IncrementStat(ctx, playerID, stat, delta); err != nil {
		logger.Warn("Failed to update player statistic", "stat", stat, "error", err)
	}
}
