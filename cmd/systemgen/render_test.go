package main

import (
	"strings"
	"testing"
	"time"

	"galaxy-server/internal/catalog"
	"galaxy-server/internal/generator"
	"galaxy-server/internal/models"
)

func TestRenderListsEveryPlanet(t *testing.T) {
	seed := uint64(11)
	params := generator.Params{
		Name:         "Render Test",
		StarType:     "enana_amarilla",
		StarMass:     1,
		PlanetsCount: 4,
		Seed:         &seed,
	}
	s, err := generator.New(catalog.Default()).Generate(generator.NewRand(&seed), params, time.Now())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	crises := []models.Crisis{{Severity: models.SeverityHigh, Message: "metals running out"}}
	out := Render(s, crises)

	for _, want := range []string{"Render Test", "Render Test I", "Render Test IV", "metals running out"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
