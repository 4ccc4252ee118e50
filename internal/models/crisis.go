package models

type CrisisType string

const (
	CrisisResourceDepletion     CrisisType = "resource_depletion"
	CrisisEnvironmentalCollapse CrisisType = "environmental_collapse"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Crisis is emitted by the time advance for a planet whose projected state crosses a threshold
// within one of the projection horizons. Year is the galactic year the check ran at.
type Crisis struct {
	Type           CrisisType `json:"type"`
	Severity       Severity   `json:"severity"`
	PlanetID       string     `json:"planetId"`
	PlanetName     string     `json:"planetName"`
	Resource       string     `json:"resource,omitempty"`
	Horizon        int        `json:"horizon"`
	YearsRemaining int        `json:"yearsRemaining"`
	Year           int        `json:"year"`
	Message        string     `json:"message"`
}
