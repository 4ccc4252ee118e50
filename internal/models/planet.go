package models

type PlanetType string

const (
	PlanetRocky   PlanetType = "rocky"
	PlanetGaseous PlanetType = "gaseous"
	PlanetIcy     PlanetType = "icy"
	PlanetOceanic PlanetType = "oceanic"
)

const (
	TectonicNone     = "none"
	TectonicLow      = "low"
	TectonicModerate = "moderate"
	TectonicHigh     = "high"
)

// Resource keys produced by the generator
const (
	ResourceMetals       = "metals"
	ResourceEnergy       = "energy"
	ResourceRareElements = "rareElements"
)

type Orbit struct {
	SemiMajorAxis float64 `json:"semiMajorAxis"`
	Eccentricity  float64 `json:"eccentricity"`
	Period        float64 `json:"period"`
	Inclination   float64 `json:"inclination"`
	MeanAnomaly   float64 `json:"meanAnomaly"`
}

type Rotation struct {
	Period    float64 `json:"period"`
	AxialTilt float64 `json:"axialTilt"`
}

// Temperature values are in degrees Celsius except Greenhouse, which is the offset in kelvin
type Temperature struct {
	Effective  float64 `json:"effective"`
	Surface    float64 `json:"surface"`
	Greenhouse float64 `json:"greenhouse"`
	Albedo     float64 `json:"albedo"`
}

type Atmosphere struct {
	Composition map[string]float64 `json:"composition"`
	Albedo      float64            `json:"albedo"`
	Pressure    float64            `json:"pressure"`
	Mass        float64            `json:"mass"`
	Quality     float64            `json:"quality"`
}

type Conditions struct {
	Temperature          Temperature `json:"temperature"`
	TemperatureStability float64     `json:"temperatureStability"`
	Atmosphere           Atmosphere  `json:"atmosphere"`
	Pressure             float64     `json:"pressure"`
	Habitability         float64     `json:"habitability"`
}

type EnergySource struct {
	Share      float64 `json:"share"`
	Efficiency float64 `json:"efficiency"`
}

type Resource struct {
	Current             float64                 `json:"current"`
	Initial             float64                 `json:"initial"`
	DepletionRate       float64                 `json:"depletionRate"`
	YearsRemaining      float64                 `json:"yearsRemaining"`
	RecyclingEfficiency float64                 `json:"recyclingEfficiency,omitempty"`
	Consumption         float64                 `json:"consumption,omitempty"`
	Sources             map[string]EnergySource `json:"sources,omitempty"`
}

// RemainingFraction is current over initial, 0 for a resource that never had any stock
func (r Resource) RemainingFraction() float64 {
	if r.Initial <= 0 {
		return 0
	}
	return r.Current / r.Initial
}

type Moon struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Mass          float64 `json:"mass"`
	Radius        float64 `json:"radius"`
	Distance      float64 `json:"distance"`
	OrbitalPeriod float64 `json:"orbitalPeriod"`
	Composition   string  `json:"composition"`
}

// Planet size is in Earth radii and mass in Earth masses
type Planet struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Index            int                 `json:"index"`
	Type             PlanetType          `json:"type"`
	Size             float64             `json:"size"`
	Mass             float64             `json:"mass"`
	Orbit            Orbit               `json:"orbit"`
	Rotation         Rotation            `json:"rotation"`
	TectonicActivity string              `json:"tectonicActivity"`
	Conditions       Conditions          `json:"conditions"`
	Resources        map[string]Resource `json:"resources"`
	Civilization     *Civilization       `json:"civilization,omitempty"`
	Moons            []Moon              `json:"moons"`
}

func (p *Planet) Inhabited() bool {
	return p.Civilization != nil
}
