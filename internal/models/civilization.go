package models

// MaxPopulation keeps compounded growth inside int64
const MaxPopulation = 1e18

type Government struct {
	Type string            `json:"type"`
	Laws map[string]string `json:"laws"`
}

type Kardashev struct {
	Level             float64 `json:"level"`
	EnergyConsumption float64 `json:"energyConsumption"`
	ProgressToNext    float64 `json:"progressToNext"`
}

type Civilization struct {
	Era        string             `json:"era"`
	Population int64              `json:"population"`
	GrowthRate float64            `json:"growthRate"`
	Happiness  float64            `json:"happiness"`
	Stability  float64            `json:"stability"`
	Government Government         `json:"government"`
	Technology map[string]float64 `json:"technology"`
	Kardashev  Kardashev          `json:"kardashev"`
	// Extinct civilizations keep their last state and are skipped by the time advance
	Extinct bool `json:"extinct"`
}
