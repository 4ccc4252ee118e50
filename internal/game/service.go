package game

import (
	"context"
	"log/slog"
	"math"

	"galaxy-server/internal/models"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/system"
)

type Systems interface {
	ListOwned(ctx context.Context, ownerID int) ([]system.Record, error)
	AdvanceSystem(ctx context.Context, ownerID int, id string, years, currentYear int) (*system.AdvanceResult, error)
}

// Clock is the per player galactic calendar
type Clock interface {
	GalacticYear(ctx context.Context, playerID int) (int, error)
	AdvanceGalacticYear(ctx context.Context, playerID int, years int) (int, error)
}

type Service struct {
	systems Systems
	clock   Clock
	sim     config.SimulationConfig
	logger  *slog.Logger
}

func NewService(systems Systems, clock Clock, cfg *config.Config, logger *slog.Logger) *Service {
	logger.Debug("Initializing game service")

	return &Service{
		systems: systems,
		clock:   clock,
		sim:     cfg.Simulation,
		logger:  logger,
	}
}

// AdvanceTime moves the player's clock by years and every owned system with it. A system that
// fails to advance is reported in Failed and does not stop the others.
func (s *Service) AdvanceTime(ctx context.Context, playerID int, years int) (*AdvanceResult, error) {
	if years == 0 {
		years = s.sim.DefaultAdvanceYears
	}
	if years < 1 || years > s.sim.MaxAdvanceYears {
		return nil, errors.Validationf("years must be between 1 and %d", s.sim.MaxAdvanceYears)
	}

	logger := s.logger.With(
		"component", "game_service",
		"operation", "advance_time",
		"player_id", playerID,
		"years", years,
	)

	records, err := s.systems.ListOwned(ctx, playerID)
	if err != nil {
		return nil, err
	}

	year, err := s.clock.AdvanceGalacticYear(ctx, playerID, years)
	if err != nil {
		return nil, err
	}

	result := &AdvanceResult{
		GalacticYear: year,
		Years:        years,
		Advanced:     []string{},
		Failed:       []string{},
		Crises:       []models.Crisis{},
	}

	for _, rec := range records {
		advanced, err := s.systems.AdvanceSystem(ctx, playerID, rec.ID, years, year)
		if err != nil {
			logger.Warn("Failed to advance star system", "system_id", rec.ID, "error", err)
			result.Failed = append(result.Failed, rec.ID)
			continue
		}
		result.Advanced = append(result.Advanced, rec.ID)
		result.Crises = append(result.Crises, advanced.Crises...)
	}

	logger.Info("Galactic time advanced",
		"galactic_year", year,
		"advanced", len(result.Advanced),
		"failed", len(result.Failed),
		"crises", len(result.Crises),
	)
	return result, nil
}

func (s *Service) State(ctx context.Context, playerID int) (*State, error) {
	year, err := s.clock.GalacticYear(ctx, playerID)
	if err != nil {
		return nil, err
	}

	records, err := s.systems.ListOwned(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &State{GalacticYear: year, Stats: ComputeStats(records)}, nil
}

// ComputeStats averages the Kardashev level over inhabited planets only
func ComputeStats(records []system.Record) PlayerStats {
	stats := PlayerStats{Systems: len(records)}

	var kardashev float64
	inhabited := 0
	for _, rec := range records {
		if rec.Snapshot == nil {
			continue
		}
		stats.TotalPlanets += len(rec.Snapshot.Planets)
		for _, p := range rec.Snapshot.Planets {
			if p.Civilization == nil {
				continue
			}
			if stats.TotalPopulation > math.MaxInt64-p.Civilization.Population {
				stats.TotalPopulation = math.MaxInt64
			} else {
				stats.TotalPopulation += p.Civilization.Population
			}
			kardashev += p.Civilization.Kardashev.Level
			inhabited++
		}
	}

	if inhabited > 0 {
		stats.AverageKardashev = kardashev / float64(inhabited)
	}
	return stats
}
