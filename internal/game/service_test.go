package game

import (
	"context"
	"testing"

	"galaxy-server/internal/models"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/logger"
	"galaxy-server/internal/system"
)

type fakeSystems struct {
	records  []system.Record
	failing  map[string]bool
	advanced map[string]int
	years    []int
}

func (f *fakeSystems) ListOwned(_ context.Context, _ int) ([]system.Record, error) {
	return f.records, nil
}

func (f *fakeSystems) AdvanceSystem(_ context.Context, _ int, id string, years, currentYear int) (*system.AdvanceResult, error) {
	if f.failing[id] {
		return nil, errors.Conflictf("star system %s was modified concurrently, retry", id)
	}
	if f.advanced == nil {
		f.advanced = map[string]int{}
	}
	f.advanced[id] += years
	f.years = append(f.years, currentYear)
	return &system.AdvanceResult{
		Crises: []models.Crisis{{PlanetID: id + "-p1", Year: currentYear}},
		Years:  years,
	}, nil
}

type fakeClock struct {
	year int
}

func (c *fakeClock) GalacticYear(context.Context, int) (int, error) {
	return c.year, nil
}

func (c *fakeClock) AdvanceGalacticYear(_ context.Context, _ int, years int) (int, error) {
	c.year += years
	return c.year, nil
}

func testService(systems Systems, clock Clock) *Service {
	cfg := &config.Config{Simulation: config.SimulationConfig{DefaultAdvanceYears: 100, MaxAdvanceYears: 1000}}
	return NewService(systems, clock, cfg, logger.Discard())
}

func record(id string, planets ...models.Planet) system.Record {
	return system.Record{
		Summary:  system.Summary{ID: id},
		Snapshot: &models.StarSystem{ID: id, Planets: planets},
	}
}

func inhabited(pop int64, level float64) models.Planet {
	return models.Planet{Civilization: &models.Civilization{
		Population: pop,
		Kardashev:  models.Kardashev{Level: level},
	}}
}

func TestAdvanceTime(t *testing.T) {
	systems := &fakeSystems{
		records: []system.Record{record("a"), record("b"), record("c")},
		failing: map[string]bool{"b": true},
	}
	clock := &fakeClock{year: 2024}
	svc := testService(systems, clock)

	result, err := svc.AdvanceTime(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("AdvanceTime: %v", err)
	}

	if result.GalacticYear != 2124 || result.Years != 100 {
		t.Errorf("year = %d, years = %d", result.GalacticYear, result.Years)
	}
	if len(result.Advanced) != 2 || len(result.Failed) != 1 || result.Failed[0] != "b" {
		t.Errorf("advanced = %v, failed = %v", result.Advanced, result.Failed)
	}
	if len(result.Crises) != 2 {
		t.Errorf("crises = %d, want 2", len(result.Crises))
	}
	for _, y := range systems.years {
		if y != 2124 {
			t.Errorf("system advanced with year %d, want 2124", y)
		}
	}
}

func TestAdvanceTimeValidation(t *testing.T) {
	svc := testService(&fakeSystems{}, &fakeClock{year: 2024})

	for _, years := range []int{-1, 1001} {
		_, err := svc.AdvanceTime(context.Background(), 1, years)
		if !errors.IsType(err, errors.ErrorTypeValidation) {
			t.Errorf("years %d: err = %v, want validation", years, err)
		}
	}
}

func TestState(t *testing.T) {
	systems := &fakeSystems{records: []system.Record{
		record("a", inhabited(1000, 0.2), models.Planet{}),
		record("b", inhabited(500, 0.6)),
	}}
	svc := testService(systems, &fakeClock{year: 2500})

	state, err := svc.State(context.Background(), 1)
	if err != nil {
		t.Fatalf("State: %v", err)
	}

	if state.GalacticYear != 2500 {
		t.Errorf("year = %d", state.GalacticYear)
	}
	want := PlayerStats{Systems: 2, TotalPlanets: 3, TotalPopulation: 1500}
	got := state.Stats
	if got.Systems != want.Systems || got.TotalPlanets != want.TotalPlanets || got.TotalPopulation != want.TotalPopulation {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
	if d := got.AverageKardashev - 0.4; d > 1e-9 || d < -1e-9 {
		t.Errorf("average kardashev = %g, want 0.4", got.AverageKardashev)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	if got := ComputeStats(nil); got != (PlayerStats{}) {
		t.Errorf("ComputeStats(nil) = %+v", got)
	}
}
