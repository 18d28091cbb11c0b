// Package export renders plans and daily picks into user-facing formats:
// markdown, ICS calendar events and a JSON artifact.
package export

import (
	"fmt"
	"strings"

	"duesseldorf-family-adventures/internal/models"
)

// RenderActivityPlanMarkdown renders a plan into the four-section
// markdown document shown to the user and embedded in emails.
func RenderActivityPlanMarkdown(plan *models.ActivityPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", plan.Title)
	if plan.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", plan.Summary)
	}

	b.WriteString("## Plan\n\n")
	for _, step := range plan.Steps {
		fmt.Fprintf(&b, "- %s\n", step)
	}
	b.WriteString("\n## Sicherheit\n\n")
	for _, note := range plan.SafetyNotes {
		fmt.Fprintf(&b, "- %s\n", note)
	}
	b.WriteString("\n## Eltern-Kind-Impulse\n\n")
	for _, prompt := range plan.Prompts {
		fmt.Fprintf(&b, "- %s\n", prompt.Text())
	}
	b.WriteString("\n## Varianten\n\n")
	for _, variant := range plan.Variants {
		fmt.Fprintf(&b, "- %s\n", variant)
	}

	if len(plan.Supports) > 0 {
		labels := make([]string, 0, len(plan.Supports))
		for _, goal := range plan.Supports {
			labels = append(labels, string(goal))
		}
		fmt.Fprintf(&b, "\nFördert: %s\n", strings.Join(labels, ", "))
	}
	return b.String()
}

// RenderDailyMarkdown renders the daily-pick document: adventure facts,
// weather line and the plan sections.
func RenderDailyMarkdown(adventure *models.MicroAdventure, plan *models.ActivityPlan, weather *models.WeatherSummary) string {
	var b strings.Builder

	b.WriteString("# Mikroabenteuer des Tages\n\n")
	fmt.Fprintf(&b, "**%s**  \n", adventure.Title)
	fmt.Fprintf(&b, "*Ort:* %s · *Dauer:* %d min · *Distanz:* %.1f km  \n", adventure.Area, adventure.DurationMinutes, adventure.DistanceKm)
	fmt.Fprintf(&b, "%s\n\n", weatherLine(weather))
	fmt.Fprintf(&b, "**Startpunkt:** %s\n\n", adventure.StartPoint)

	b.WriteString(RenderActivityPlanMarkdown(plan))
	return b.String()
}

func weatherLine(weather *models.WeatherSummary) string {
	if weather == nil {
		return "Wetter: (nicht geladen)"
	}
	var parts []string
	if weather.TemperatureMaxC != nil {
		parts = append(parts, fmt.Sprintf("max %.0f°C", *weather.TemperatureMaxC))
	}
	if weather.PrecipitationProbMaxPct != nil {
		parts = append(parts, fmt.Sprintf("Regenwahrscheinlichkeit %.0f%%", *weather.PrecipitationProbMaxPct))
	}
	if weather.WindSpeedMaxKmh != nil {
		parts = append(parts, fmt.Sprintf("Wind %.0f km/h", *weather.WindSpeedMaxKmh))
	}
	if len(parts) == 0 {
		return "Wetter: " + strings.Join(weather.DerivedTags, ", ")
	}
	return "Wetter: " + strings.Join(parts, ", ")
}
