package physics

import (
	"math"
	"testing"

	"galaxy-server/internal/models"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v ± %v", name, got, want, tol)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestLuminosityAndTemperaturePositive(t *testing.T) {
	masses := []float64{0.01, 0.08, 0.3, 0.43, 0.5, 1, 1.2, 2.5, 10, 50, 90, 100}
	ages := []float64{0, 1e6, 4.5e9, 1e10, 5e10, 1e13}

	for _, m := range masses {
		for _, age := range ages {
			l := Luminosity(m, age)
			if !(l > 0) {
				t.Fatalf("Luminosity(%v, %v) = %v", m, age, l)
			}
			temp := Temperature(m, l)
			if !(temp > 0) || math.IsInf(temp, 0) || math.IsNaN(temp) {
				t.Fatalf("Temperature(%v, %v) = %v", m, l, temp)
			}
		}
	}
}

func TestMainSequenceLifetimeDecreasing(t *testing.T) {
	regimes := [][2]float64{{0.05, 0.43}, {0.431, 1.0}, {1.001, 100}}

	for _, r := range regimes {
		prev := math.Inf(1)
		for i := 0; i <= 50; i++ {
			m := r[0] + (r[1]-r[0])*float64(i)/50
			lifetime := MainSequenceLifetime(m)
			if lifetime >= prev {
				t.Fatalf("lifetime not decreasing at mass %v in regime %v", m, r)
			}
			prev = lifetime
		}
	}
}

func TestMainSequenceLifetimeBreakpoints(t *testing.T) {
	approx(t, "lifetime(1)", MainSequenceLifetime(1), 1e10, 1)
	approx(t, "lifetime(0.43)", MainSequenceLifetime(0.43), 1e10*math.Pow(0.43, -2.3), 1)
	approx(t, "lifetime(2)", MainSequenceLifetime(2), 1e10*math.Pow(2, -3.5), 1)
}

func TestLuminosityDiscontinuityPastLifetime(t *testing.T) {
	lifetime := MainSequenceLifetime(1)
	approx(t, "at lifetime", Luminosity(1, lifetime), 1, 1e-12)
	approx(t, "one Gyr past", Luminosity(1, lifetime+1e9), 2, 1e-12)
}

func TestSpectralClassBoundaries(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{50000, "O"}, {30000, "O"}, {29999.99, "B"},
		{10000, "B"}, {9999.99, "A"},
		{7500, "A"}, {7499.99, "F"},
		{6000, "F"}, {5999.99, "G"},
		{5200, "G"}, {5199.99, "K"},
		{3700, "K"}, {3699.99, "M"},
		{0, "M"},
	}
	for _, tt := range tests {
		if got := SpectralClass(tt.temp); got != tt.want {
			t.Errorf("SpectralClass(%v) = %s, want %s", tt.temp, got, tt.want)
		}
	}
}

func TestEvolutionaryStage(t *testing.T) {
	tests := []struct {
		age  float64
		want string
	}{
		{0, StageYoung},
		{0.5e9, StageYoung},
		{4.5e9, StageMainSequence},
		{9.5e9, StageGiant},
		{1.2e10, StageSupergiant},
		{1.5e10, StageRemnant},
	}
	for _, tt := range tests {
		if got := EvolutionaryStage(1, tt.age); got != tt.want {
			t.Errorf("EvolutionaryStage(1, %v) = %s, want %s", tt.age, got, tt.want)
		}
	}
}

func TestDeriveStarSun(t *testing.T) {
	star := DeriveStar("enana_amarilla", 1, 4.5e9)

	approx(t, "luminosity", star.Luminosity, 1, 1e-12)
	approx(t, "radius", star.Radius, 1, 1e-12)
	approx(t, "temperature", star.Temperature, 5772, 10)
	if star.SpectralClass != "G" || star.Color != "#FFF4EA" || star.Stage != StageMainSequence {
		t.Errorf("unexpected sun %+v", star)
	}
	if !IsStarStable(1, 4.5e9) || IsStarStable(1, 2e10) {
		t.Error("IsStarStable disagrees with the lifetime")
	}
}

func TestEvolvingHabitableZone(t *testing.T) {
	young := EvolvingHabitableZone(1, 4.5e9)
	if young.HasMoved {
		t.Error("sun-like star should not move its zone within the main sequence")
	}
	old := EvolvingHabitableZone(1, 9.5e9)
	if !old.HasMoved || old.Future.Inner <= old.Current.Inner {
		t.Errorf("zone should move outward near the end of the main sequence: %+v", old)
	}
}

func TestStarColorFallback(t *testing.T) {
	if got := StarColor("D"); got != "#FFFFFF" {
		t.Errorf("StarColor(D) = %s", got)
	}
}

func TestNonPositiveMassPanics(t *testing.T) {
	expectPanic(t, "MainSequenceLifetime(0)", func() { MainSequenceLifetime(0) })
	expectPanic(t, "Radius(-1)", func() { Radius(-1) })
	expectPanic(t, "Luminosity(NaN)", func() { Luminosity(math.NaN(), 1) })
	expectPanic(t, "OrbitalPeriod(0)", func() { OrbitalPeriod(0, 1) })
}

func TestOrbitalPeriodEarth(t *testing.T) {
	approx(t, "period", OrbitalPeriod(1, 1), 1, 0.001)
	approx(t, "velocity", OrbitalVelocity(1, 1), 29.78, 0.05)
}

func TestCircularOrbitDistanceConstant(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 2.1, Inclination: 0.3, LongitudeAscendingNode: 1.1, ArgumentPeriapsis: 0.4}

	for _, tm := range []float64{0, 0.25, 1, 3.7, 100, 12345.6} {
		p := OrbitalPosition(tm, el)
		approx(t, "distance", p.Distance, 2.1, 1e-12)
		approx(t, "norm", math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z), 2.1, 1e-9)
	}
}

func TestEllipticalOrbitBounds(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 1, Eccentricity: 0.2}
	periapsis := OrbitalPosition(0, el)
	approx(t, "periapsis", periapsis.Distance, 0.8, 1e-9)

	for _, tm := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		d := OrbitalPosition(tm, el).Distance
		if d < 0.8-1e-9 || d > 1.2+1e-9 {
			t.Errorf("distance at %v = %v outside [0.8, 1.2]", tm, d)
		}
	}
}

func TestSolveKepler(t *testing.T) {
	m, e := 1.0, 0.1
	ecc := SolveKepler(m, e, KeplerIterations)
	approx(t, "kepler residual", ecc-e*math.Sin(ecc), m, 1e-9)

	if got := SolveKepler(m, e, 0); got != m {
		t.Errorf("zero iterations should return the mean anomaly, got %v", got)
	}
}

func TestHillSphere(t *testing.T) {
	approx(t, "hill", HillSphere(3, 1, 1), 1, 1e-12)
	earth := HillSphere(ToSolarMasses(1), 1, 1)
	approx(t, "earth hill", earth, 0.01, 0.0005)
}

func TestIsOrbitStable(t *testing.T) {
	star := models.Star{Mass: 1}
	planet := func(id string, a, mass float64) models.Planet {
		return models.Planet{ID: id, Mass: mass, Orbit: models.Orbit{SemiMajorAxis: a}}
	}

	spread := []models.Planet{planet("a", 0.4, 1), planet("b", 2.1, 1), planet("c", 3.8, 1)}
	for _, p := range spread {
		if !IsOrbitStable(p, star, spread) {
			t.Errorf("planet %s should be stable", p.ID)
		}
	}

	crowded := []models.Planet{planet("a", 1.0, 300), planet("b", 1.05, 1)}
	if IsOrbitStable(crowded[0], star, crowded) {
		t.Error("a Jupiter mass planet 0.05 AU from a neighbour is unstable")
	}
}

func TestFindOrbitalResonances(t *testing.T) {
	planets := []models.Planet{
		{ID: "inner", Orbit: models.Orbit{Period: 1}},
		{ID: "outer", Orbit: models.Orbit{Period: 2.01}},
		{ID: "far", Orbit: models.Orbit{Period: 7}},
	}

	res := FindOrbitalResonances(planets)
	if len(res) != 1 {
		t.Fatalf("expected 1 resonance, got %+v", res)
	}
	r := res[0]
	if r.Resonance != "2:1" || r.Planets != [2]string{"inner", "outer"} || !r.Dangerous() {
		t.Errorf("unexpected resonance %+v", r)
	}
	approx(t, "strength", r.Strength, 0.5, 1e-9)
}

func TestFindOrbitalResonancesOrderIndependent(t *testing.T) {
	planets := []models.Planet{
		{ID: "outer", Orbit: models.Orbit{Period: 1.5}},
		{ID: "inner", Orbit: models.Orbit{Period: 1}},
	}
	res := FindOrbitalResonances(planets)
	if len(res) != 1 || res[0].Resonance != "3:2" || res[0].Dangerous() {
		t.Fatalf("unexpected resonances %+v", res)
	}
}

func TestGreenhouseEffect(t *testing.T) {
	if got := GreenhouseEffect(map[string]float64{"CO2": 0.00028}); math.Abs(got) > 1e-12 {
		t.Errorf("reference CO2 should give zero forcing, got %v", got)
	}
	if got := GreenhouseEffect(map[string]float64{"CO2": 0, "H2": 0.9}); got != 0 {
		t.Errorf("non-positive and inert gases must contribute zero, got %v", got)
	}

	want := 0.8 * (5.35*math.Log(0.0004/0.00028) +
		0.5*math.Log(0.0000018/0.00028) +
		0.15*math.Log(0.00000032/0.00028) +
		2.0*math.Log(0.01/0.00028))
	approx(t, "earth baseline", GreenhouseEffect(nil), want, 1e-9)
}

func TestEquilibriumTemperatureEarth(t *testing.T) {
	temp := EquilibriumTemperature(1, 1, models.Atmosphere{})
	approx(t, "effective", temp.Effective, -18.5, 1)
	if temp.Albedo != 0.3 {
		t.Errorf("default albedo = %v", temp.Albedo)
	}
	approx(t, "surface", temp.Surface, temp.Effective+temp.Greenhouse, 1e-9)
}

func TestHabitableZoneOrdering(t *testing.T) {
	for _, l := range []float64{1e-6, 0.01, 1, 100, 1e6} {
		hz := HabitableZone(l)
		if !(hz.Inner < hz.Outer) {
			t.Errorf("HabitableZone(%v) = %+v", l, hz)
		}
		approx(t, "width", hz.Width, hz.Outer-hz.Inner, 1e-12)
	}
	sun := HabitableZone(1)
	approx(t, "inner", sun.Inner, 0.95, 1e-12)
	approx(t, "outer", sun.Outer, 1.37, 1e-12)
}

func TestSurfacePressure(t *testing.T) {
	g := SurfaceGravity(1, 1)
	approx(t, "earth gravity", g, 9.82, 0.01)
	approx(t, "default atmosphere", SurfacePressure(1, 1, 0), g*101.325, 1e-9)
	approx(t, "thin atmosphere", SurfacePressure(1, 1, 0.1), g*10.1325, 1e-9)
}
