package models

type Star struct {
	Type          string  `json:"type"`
	Mass          float64 `json:"mass"`
	Age           float64 `json:"age"`
	Luminosity    float64 `json:"luminosity"`
	Temperature   float64 `json:"temperature"`
	Radius        float64 `json:"radius"`
	SpectralClass string  `json:"spectralClass"`
	Stage         string  `json:"stage"`
	Color         string  `json:"color"`
}

type CompanionStar struct {
	Star
	OrbitDistance float64 `json:"orbitDistance"`
}
