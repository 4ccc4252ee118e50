// Package catalog exposes the static reference data used to generate star systems: star and
// planet classes, governments, multiple-system kinds, resource templates and minor-body belts.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type StarType struct {
	Key         string  `yaml:"key" json:"key"`
	Name        string  `yaml:"name" json:"name"`
	Mass        Range   `yaml:"mass" json:"mass"`
	Temperature Range   `yaml:"temperature" json:"temperature"`
	Luminosity  Range   `yaml:"luminosity" json:"luminosity"`
	Lifespan    float64 `yaml:"lifespan" json:"lifespan"`
	Color       string  `yaml:"color" json:"color"`
}

type Atmosphere struct {
	Composition map[string]float64 `yaml:"composition"`
	Albedo      float64            `yaml:"albedo"`
	Mass        float64            `yaml:"mass"`
	Quality     float64            `yaml:"quality"`
}

type PlanetType struct {
	Key          string     `yaml:"key" json:"key"`
	Name         string     `yaml:"name" json:"name"`
	Density      Range      `yaml:"density" json:"density"`
	Size         Range      `yaml:"size" json:"size"`
	Habitability Range      `yaml:"habitability" json:"habitability"`
	Moons        Range      `yaml:"moons" json:"moons"`
	Atmosphere   Atmosphere `yaml:"atmosphere" json:"-"`
	// nil when the atmosphere does not depend on the habitable zone
	AtmosphereOutsideZone *Atmosphere `yaml:"atmosphere_outside_zone" json:"-"`
}

type Government struct {
	Key  string            `yaml:"key" json:"key"`
	Name string            `yaml:"name" json:"name"`
	Laws map[string]string `yaml:"laws" json:"laws"`
}

type MultipleSystem struct {
	Key        string `yaml:"key" json:"key"`
	Companions int    `yaml:"companions" json:"companions"`
}

type ZonePreference struct {
	Key          string  `yaml:"key" json:"key"`
	OceanicShare float64 `yaml:"oceanic_share" json:"oceanicShare"`
}

type EnergySource struct {
	Share      float64 `yaml:"share"`
	Efficiency float64 `yaml:"efficiency"`
}

type ResourceTemplate struct {
	Key                 string                  `yaml:"key"`
	Initial             float64                 `yaml:"initial"`
	DepletionRate       float64                 `yaml:"depletion_rate"`
	RecyclingEfficiency float64                 `yaml:"recycling_efficiency"`
	Consumption         float64                 `yaml:"consumption"`
	Sources             map[string]EnergySource `yaml:"sources"`
}

type Belt struct {
	Key             string  `yaml:"key"`
	InnerRadius     float64 `yaml:"inner_radius"`
	OuterRadius     float64 `yaml:"outer_radius"`
	ResourceDensity float64 `yaml:"resource_density"`
}

type Catalog struct {
	StarTypes       []StarType         `yaml:"star_types"`
	PlanetTypes     []PlanetType       `yaml:"planet_types"`
	Governments     []Government       `yaml:"governments"`
	MultipleSystems []MultipleSystem   `yaml:"multiple_systems"`
	ZonePreferences []ZonePreference   `yaml:"zone_preferences"`
	Resources       []ResourceTemplate `yaml:"resources"`
	Belts           []Belt             `yaml:"belts"`
	CompanionTypes  []string           `yaml:"companion_types"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary. It is parsed once and must be treated as read-only.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.StarTypes) == 0 {
		return fmt.Errorf("catalog has no star types")
	}
	if len(c.PlanetTypes) == 0 {
		return fmt.Errorf("catalog has no planet types")
	}
	if len(c.Governments) == 0 {
		return fmt.Errorf("catalog has no governments")
	}

	for _, st := range c.StarTypes {
		if st.Key == "" || st.Mass.Min <= 0 || st.Mass.Max < st.Mass.Min {
			return fmt.Errorf("star type %q has an invalid mass range", st.Key)
		}
	}
	for _, pt := range c.PlanetTypes {
		if pt.Size.Min <= 0 || pt.Size.Max < pt.Size.Min {
			return fmt.Errorf("planet type %q has an invalid size range", pt.Key)
		}
		if pt.Habitability.Min < 0 || pt.Habitability.Max > 1 {
			return fmt.Errorf("planet type %q has habitability outside [0,1]", pt.Key)
		}
	}
	for _, companion := range c.CompanionTypes {
		if _, ok := c.StarType(companion); !ok {
			return fmt.Errorf("companion type %q is not a star type", companion)
		}
	}
	return nil
}

func (c *Catalog) StarType(key string) (StarType, bool) {
	for _, st := range c.StarTypes {
		if st.Key == key {
			return st, true
		}
	}
	return StarType{}, false
}

func (c *Catalog) PlanetType(key string) (PlanetType, bool) {
	for _, pt := range c.PlanetTypes {
		if pt.Key == key {
			return pt, true
		}
	}
	return PlanetType{}, false
}

func (c *Catalog) Government(key string) (Government, bool) {
	for _, g := range c.Governments {
		if g.Key == key {
			return g, true
		}
	}
	return Government{}, false
}

func (c *Catalog) MultipleSystem(key string) (MultipleSystem, bool) {
	for _, m := range c.MultipleSystems {
		if m.Key == key {
			return m, true
		}
	}
	return MultipleSystem{}, false
}

func (c *Catalog) ZonePreference(key string) (ZonePreference, bool) {
	for _, z := range c.ZonePreferences {
		if z.Key == key {
			return z, true
		}
	}
	return ZonePreference{}, false
}

// StarTypeKeys lists the star type keys in sorted order, for error messages and CLI help
func (c *Catalog) StarTypeKeys() []string {
	keys := make([]string, 0, len(c.StarTypes))
	for _, st := range c.StarTypes {
		keys = append(keys, st.Key)
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) GovernmentKeys() []string {
	keys := make([]string, 0, len(c.Governments))
	for _, g := range c.Governments {
		keys = append(keys, g.Key)
	}
	sort.Strings(keys)
	return keys
}
