// Command systemgen generates a star system offline and prints it, optionally after advancing it
// through galactic time.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"galaxy-server/internal/catalog"
	"galaxy-server/internal/generator"
	"galaxy-server/internal/models"
	"galaxy-server/internal/simulation"
)

const (
	startingYear = 2024
	maxYears     = 1_000_000
)

func main() {
	var params generator.Params
	flag.StringVar(&params.Name, "name", "", "System name (random when empty)")
	flag.StringVar(&params.StarType, "star-type", "enana_amarilla", "Star type key from the catalog")
	flag.Float64Var(&params.StarMass, "mass", 1.0, "Star mass in solar masses")
	flag.Float64Var(&params.StarAge, "age", generator.DefaultStarAge, "Star age in millions of years")
	flag.IntVar(&params.PlanetsCount, "planets", 5, "Number of planets")
	flag.StringVar(&params.MultipleSystem, "multiple", generator.DefaultMultipleSystem, "single, binary or trinary")
	flag.StringVar(&params.HabitableZone, "zone", generator.DefaultZonePreference, "Habitable zone preference")
	flag.StringVar(&params.GovernmentType, "government", generator.DefaultGovernment, "Government type key")
	seed := flag.Uint64("seed", 0, "Seed for reproducible output (random when not set)")
	advance := flag.Int("advance", 0, "Galactic years to advance after generation")
	asJSON := flag.Bool("json", false, "Print the snapshot as JSON")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			params.Seed = seed
		}
	})

	if err := run(params, *advance, *asJSON); err != nil {
		fmt.Fprintln(os.Stderr, "systemgen:", err)
		os.Exit(1)
	}
}

func run(params generator.Params, advance int, asJSON bool) error {
	rng := generator.NewRand(params.Seed)
	if params.Name == "" {
		params.Name = generator.RandomName(rng)
	}

	snapshot, err := generator.New(catalog.Default()).Generate(rng, params, time.Now())
	if err != nil {
		return err
	}

	var crises []models.Crisis
	if advance > 0 {
		snapshot, crises, err = simulation.NewEngine(maxYears).AdvanceSystem(snapshot, advance, startingYear+advance)
		if err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			System *models.StarSystem `json:"system"`
			Crises []models.Crisis    `json:"crises,omitempty"`
		}{snapshot, crises})
	}

	fmt.Println(Render(snapshot, crises))
	return nil
}
