package models

import (
	"maps"
	"slices"
)

// Clone returns a deep copy; mutating the copy never affects s
func (s *StarSystem) Clone() *StarSystem {
	out := *s
	out.Companions = slices.Clone(s.Companions)
	out.MinorBodies = slices.Clone(s.MinorBodies)

	if s.Planets != nil {
		out.Planets = make([]Planet, len(s.Planets))
		for i := range s.Planets {
			out.Planets[i] = s.Planets[i].Clone()
		}
	}
	return &out
}

func (p Planet) Clone() Planet {
	out := p
	out.Conditions.Atmosphere.Composition = maps.Clone(p.Conditions.Atmosphere.Composition)
	out.Moons = slices.Clone(p.Moons)

	if p.Resources != nil {
		out.Resources = make(map[string]Resource, len(p.Resources))
		for name, r := range p.Resources {
			r.Sources = maps.Clone(r.Sources)
			out.Resources[name] = r
		}
	}
	if p.Civilization != nil {
		civ := p.Civilization.Clone()
		out.Civilization = &civ
	}
	return out
}

func (c Civilization) Clone() Civilization {
	out := c
	out.Government.Laws = maps.Clone(c.Government.Laws)
	out.Technology = maps.Clone(c.Technology)
	return out
}
