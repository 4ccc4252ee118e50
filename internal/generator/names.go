package generator

import "math/rand/v2"

var starNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda", "Mizar",
}

// RandomName picks a catalogue star name for systems created without one
func RandomName(rng *rand.Rand) string {
	return starNames[rng.IntN(len(starNames))]
}
