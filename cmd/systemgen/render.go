package main

import (
	"fmt"
	"strings"

	"galaxy-server/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9D4EDD"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render lays out a system summary for the terminal
func Render(s *models.StarSystem, crises []models.Crisis) string {
	var b strings.Builder

	star := s.PrimaryStar
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(star.Color))

	fmt.Fprintln(&b, titleStyle.Render(s.Name))
	fmt.Fprintf(&b, "%s %s %s, %.2f M☉, %.3g L☉, %.0f K, %s\n",
		labelStyle.Render("star"),
		starStyle.Render("●"),
		star.SpectralClass, star.Mass, star.Luminosity, star.Temperature, star.Stage)
	for _, c := range s.Companions {
		fmt.Fprintf(&b, "%s %s %.2f M☉ at %.1f AU\n", labelStyle.Render("companion"), c.SpectralClass, c.Mass, c.OrbitDistance)
	}
	fmt.Fprintf(&b, "%s %.2f to %.2f AU\n", labelStyle.Render("habitable zone"), s.HabitableZone.Inner, s.HabitableZone.Outer)
	fmt.Fprintf(&b, "%s %.2f\n", labelStyle.Render("stability"), s.Gravitational.StabilityIndex)
	if s.Age > 0 {
		fmt.Fprintf(&b, "%s %d years\n", labelStyle.Render("simulated"), s.Age)
	}

	rows := make([]string, 0, len(s.Planets))
	for _, p := range s.Planets {
		rows = append(rows, planetRow(p, s.HabitableZone))
	}
	fmt.Fprintln(&b, boxStyle.Render(strings.Join(rows, "\n")))

	for _, c := range crises {
		fmt.Fprintln(&b, alertStyle.Render(fmt.Sprintf("[%s] %s", c.Severity, c.Message)))
	}
	return b.String()
}

func planetRow(p models.Planet, hz models.HabitableZone) string {
	marker := " "
	if hz.Contains(p.Orbit.SemiMajorAxis) {
		marker = accentStyle.Render("*")
	}

	row := fmt.Sprintf("%s %-16s %-8s %6.2f AU %7.1f °C  hab %.2f",
		marker, p.Name, p.Type, p.Orbit.SemiMajorAxis, p.Conditions.Temperature.Surface, p.Conditions.Habitability)
	if p.Civilization != nil {
		row += fmt.Sprintf("  pop %d  K%.2f", p.Civilization.Population, p.Civilization.Kardashev.Level)
	}
	return row
}
