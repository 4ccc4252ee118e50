package dynamics

import (
	"math"
	"math/rand/v2"
	"regexp"
	"testing"

	"galaxy-server/internal/models"
	"galaxy-server/internal/physics"
)

func TestThreatLevel(t *testing.T) {
	tests := []struct {
		name string
		a, e float64
		want float64
	}{
		{"distant", 100, 0.7, 0},
		{"crosses one AU", 3, 0.75, 0.6},
		{"sungrazer", 4, 0.9, 0.9},
		{"sungrazer very eccentric", 4, 0.95, 1},
		{"eccentric only", 100, 0.95, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThreatLevel(tt.a, tt.e); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ThreatLevel(%v, %v) = %v, want %v", tt.a, tt.e, got, tt.want)
			}
		})
	}
}

func TestGenerateCometRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	star := models.Star{Mass: 1}
	name := regexp.MustCompile(`^C/2024 [A-Z0-9]{3}$`)

	for i := 0; i < 200; i++ {
		c := GenerateComet(rng, star, 2024)
		o := c.Orbit
		if o.SemiMajorAxis < 30 || o.SemiMajorAxis >= 1000 {
			t.Fatalf("semi-major axis %v", o.SemiMajorAxis)
		}
		if o.Eccentricity < 0.7 || o.Eccentricity >= 0.99 {
			t.Fatalf("eccentricity %v", o.Eccentricity)
		}
		if o.Inclination < 0 || o.Inclination >= 180 {
			t.Fatalf("inclination %v", o.Inclination)
		}
		if c.Size < 100 || c.Size >= 5000 {
			t.Fatalf("size %v", c.Size)
		}
		if c.Composition.Ice < 0.6 || c.Composition.Dust < 0.2 || c.Composition.Organic >= 0.1 {
			t.Fatalf("composition %+v", c.Composition)
		}
		if math.Abs(o.Period-physics.OrbitalPeriod(1, o.SemiMajorAxis)) > 1e-9 {
			t.Fatalf("period %v does not follow Kepler", o.Period)
		}
		if !name.MatchString(c.Name) {
			t.Fatalf("designation %q", c.Name)
		}
		if c.ThreatLevel != ThreatLevel(o.SemiMajorAxis, o.Eccentricity) {
			t.Fatalf("threat level mismatch")
		}
	}
}

func TestGenerateCometDeterministic(t *testing.T) {
	star := models.Star{Mass: 1}
	a := GenerateComet(rand.New(rand.NewPCG(1, 1)), star, 3000)
	b := GenerateComet(rand.New(rand.NewPCG(1, 1)), star, 3000)
	if a != b {
		t.Errorf("same seed produced different comets:\n%+v\n%+v", a, b)
	}
}

func TestSimulateOrbitalMotionUsesSimulatedTime(t *testing.T) {
	bodies := []Body{
		{ID: "circular", Orbit: physics.OrbitalElements{SemiMajorAxis: 5}},
		{ID: "skipped"},
	}

	first := SimulateOrbitalMotion(bodies, 1.25)
	second := SimulateOrbitalMotion(bodies, 1.25)

	if len(first) != 1 || first[0].ID != "circular" {
		t.Fatalf("unexpected positions %+v", first)
	}
	if first[0] != second[0] {
		t.Error("same simulated time must give the same position")
	}
	if math.Abs(first[0].Distance-5) > 1e-12 {
		t.Errorf("distance = %v", first[0].Distance)
	}
}

func TestCheckCollisions(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 3))
	planets := []TrackedPosition{{ID: "p1", Position: physics.Position{X: 1, Y: 0}, Radius: 1}}
	objects := []TrackedPosition{
		{ID: "hit", Position: physics.Position{X: 1.05, Y: 0, Z: 40}, Size: 1000},
		{ID: "miss", Position: physics.Position{X: 1.2, Y: 0}, Size: 1000},
	}

	got := CheckCollisions(rng, objects, planets, 7)
	if len(got) != 1 {
		t.Fatalf("expected 1 collision, got %+v", got)
	}
	c := got[0]
	if c.ObjectID != "hit" || c.PlanetID != "p1" || c.Time != 7 {
		t.Errorf("unexpected collision %+v", c)
	}
	if math.Abs(c.Distance-0.05) > 1e-12 {
		t.Errorf("distance = %v", c.Distance)
	}

	low := KineticEnergy(1000, 20000) / 4.184e15
	high := KineticEnergy(1000, 70000) / 4.184e15
	if c.Energy < low || c.Energy >= high {
		t.Errorf("energy %v outside [%v, %v)", c.Energy, low, high)
	}
}

func TestKineticEnergy(t *testing.T) {
	r := 2.0 * 500
	mass := 1000 * 4.0 / 3.0 * math.Pi * r * r * r
	want := 0.5 * mass * 100
	if got := KineticEnergy(2, 10); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("KineticEnergy = %v, want %v", got, want)
	}
}
