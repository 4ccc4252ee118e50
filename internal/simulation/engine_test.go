package simulation

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"galaxy-server/internal/catalog"
	"galaxy-server/internal/generator"
	"galaxy-server/internal/models"
	"galaxy-server/internal/shared/errors"
)

func newSystem(t *testing.T) *models.StarSystem {
	t.Helper()
	seed := uint64(11)
	system, err := generator.New(catalog.Default()).Generate(generator.NewRand(&seed), generator.Params{
		Name:           "Test",
		StarType:       "enana_amarilla",
		StarMass:       1.0,
		StarAge:        4500,
		PlanetsCount:   5,
		GovernmentType: "democratica",
	}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return system
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	return string(b)
}

func TestAdvanceZeroYearsIsIdentity(t *testing.T) {
	system := newSystem(t)

	next, crises, err := NewEngine(0).AdvanceSystem(system, 0, 2024)
	if err != nil {
		t.Fatalf("AdvanceSystem() error = %v", err)
	}
	if len(crises) != 0 {
		t.Errorf("len(crises) = %d, want 0", len(crises))
	}
	if next == system {
		t.Error("AdvanceSystem returned the input pointer")
	}
	if mustJSON(t, next) != mustJSON(t, system) {
		t.Error("zero year advance changed the snapshot")
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	system := newSystem(t)
	before := mustJSON(t, system)

	if _, _, err := NewEngine(0).AdvanceSystem(system, 500, 2024); err != nil {
		t.Fatal(err)
	}
	if mustJSON(t, system) != before {
		t.Error("input snapshot was modified")
	}
}

func TestAdvanceRejectsInvalidYears(t *testing.T) {
	system := newSystem(t)
	engine := NewEngine(1000)

	for _, years := range []int{-1, 1001} {
		_, _, err := engine.AdvanceSystem(system, years, 2024)
		if !errors.IsType(err, errors.ErrorTypeValidation) {
			t.Errorf("AdvanceSystem(%d) error = %v, want validation", years, err)
		}
	}
}

func TestAdvanceAgesStarAndSystem(t *testing.T) {
	system := newSystem(t)

	next, _, err := NewEngine(0).AdvanceSystem(system, 1000, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if next.Age != system.Age+1000 {
		t.Errorf("Age = %d, want %d", next.Age, system.Age+1000)
	}
	if next.PrimaryStar.Age != system.PrimaryStar.Age+1000 {
		t.Errorf("star age = %v, want %v", next.PrimaryStar.Age, system.PrimaryStar.Age+1000)
	}
}

func TestAdvancePlanetFormulas(t *testing.T) {
	system := newSystem(t)
	years := 100

	next, _, err := NewEngine(0).AdvanceSystem(system, years, 2024)
	if err != nil {
		t.Fatal(err)
	}

	for i, before := range system.Planets {
		after := next.Planets[i]

		if got, want := after.Conditions.Temperature.Surface, before.Conditions.Temperature.Surface+0.1; math.Abs(got-want) > 1e-9 {
			t.Errorf("planet %d surface temperature = %v, want %v", i, got, want)
		}

		metals := after.Resources[models.ResourceMetals]
		if metals.Current != before.Resources[models.ResourceMetals].Current-100*float64(years) {
			t.Errorf("planet %d metals = %v", i, metals.Current)
		}
		if metals.YearsRemaining != math.Floor(metals.Current/metals.DepletionRate) {
			t.Errorf("planet %d yearsRemaining = %v", i, metals.YearsRemaining)
		}

		civBefore, civAfter := before.Civilization, after.Civilization
		wantPopulation := math.Floor(float64(civBefore.Population) * math.Pow(civBefore.GrowthRate, float64(years)))
		// environmental collapse cuts population by a fifth
		if float64(civAfter.Population) > wantPopulation {
			t.Errorf("planet %d population = %d, want at most %v", i, civAfter.Population, wantPopulation)
		}
		if civAfter.Kardashev.Level <= civBefore.Kardashev.Level {
			t.Errorf("planet %d kardashev did not grow", i)
		}
		for domain, level := range civAfter.Technology {
			if level <= civBefore.Technology[domain] {
				t.Errorf("planet %d technology %s did not grow", i, domain)
			}
		}
	}
}

func TestAdvanceRepeatedlyKeepsInvariants(t *testing.T) {
	system := newSystem(t)
	engine := NewEngine(0)

	for step := 0; step < 50; step++ {
		next, crises, err := engine.AdvanceSystem(system, 10000, 2024+step*10000)
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		for _, c := range crises {
			if c.Year != 2024+step*10000 {
				t.Errorf("crisis year = %d", c.Year)
			}
		}
		system = next
	}

	for _, p := range system.Planets {
		if h := p.Conditions.Habitability; h < 0 || h > 1 {
			t.Errorf("%s habitability %v outside [0,1]", p.Name, h)
		}
		for name, r := range p.Resources {
			if r.Current < 0 {
				t.Errorf("%s %s current = %v", p.Name, name, r.Current)
			}
		}
		civ := p.Civilization
		if civ.Population < 0 || float64(civ.Population) > models.MaxPopulation {
			t.Errorf("%s population %d out of range", p.Name, civ.Population)
		}
		if civ.Happiness < 0 || civ.Stability < 0 {
			t.Errorf("%s happiness/stability negative", p.Name)
		}
	}
	mustJSON(t, system)
}

func TestAdvanceSkipsExtinctCivilization(t *testing.T) {
	system := newSystem(t)
	system.Planets[0].Civilization.Population = 0
	system.Planets[0].Civilization.Extinct = true
	before := system.Planets[0].Clone()

	next, crises, err := NewEngine(0).AdvanceSystem(system, 100, 2024)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range crises {
		if c.PlanetID == before.ID {
			t.Errorf("extinct planet raised crisis %+v", c)
		}
	}
	if mustJSON(t, next.Planets[0].Civilization) != mustJSON(t, before.Civilization) {
		t.Error("extinct civilization changed")
	}
	if next.Planets[0].Resources[models.ResourceMetals].Current != before.Resources[models.ResourceMetals].Current {
		t.Error("resources of an extinct civilization were consumed")
	}
}

func TestAdvanceBrighteningLowersHabitability(t *testing.T) {
	system := newSystem(t)
	// push the star past its main sequence lifetime so luminosity grows with age
	system.PrimaryStar.Age = 2e10
	for i := range system.Planets {
		system.Planets[i].Civilization = nil
		system.Planets[i].Conditions.Habitability = 0.5
	}

	next, crises, err := NewEngine(0).AdvanceSystem(system, 1_000_000_000, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(crises) != 0 {
		t.Errorf("uninhabited planets raised %d crises", len(crises))
	}
	for _, p := range next.Planets {
		if p.Conditions.Habitability != 0 {
			t.Errorf("%s habitability = %v, want 0", p.Name, p.Conditions.Habitability)
		}
	}
}
