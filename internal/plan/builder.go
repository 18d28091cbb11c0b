// Package plan turns a chosen adventure plus criteria into the structured
// ActivityPlan delivered to the user. Generation may come from a template
// fallback or an external generator; either way the result is completed
// with the four plan-B variants, gated by the safety validator and
// adjusted for unavailable materials.
package plan

import (
	"fmt"

	"duesseldorf-family-adventures/internal/models"
	"duesseldorf-family-adventures/internal/recommend"
)

// genericPrompts open and close every template-built plan
var genericPrompts = []models.ParentChildPrompt{
	{
		Say: "Was siehst du hier alles?",
		Do:  "Warte die Antwort ab und benenne gemeinsam, worauf das Kind zeigt.",
	},
	{
		Say: "Zeig mir deinen Lieblingsplatz.",
		Do:  "Folge dem Kind und lass es das Tempo bestimmen.",
	},
	{
		Say: "Was hat dir heute am besten gefallen?",
		Do:  "Wiederhole die Antwort des Kindes in einem ganzen Satz.",
	},
}

// goalPrompts holds one question template per developmental domain
var goalPrompts = map[models.DevelopmentDomain]models.ParentChildPrompt{
	models.DomainGrossMotor: {
		Say: "Schaffst du es bis zum nächsten Baum?",
		Do:  "Lauft oder hüpft zusammen los und feiert das Ankommen.",
	},
	models.DomainFineMotor: {
		Say: "Kannst du etwas ganz Kleines aufheben?",
		Do:  "Lass das Kind mit Daumen und Zeigefinger greifen und sammeln.",
	},
	models.DomainLanguage: {
		Say: "Erzähl mir, was wir gerade machen.",
		Do:  "Wiederhole die Wörter des Kindes und ergänze einen neuen Begriff.",
	},
	models.DomainSocialEmotional: {
		Say: "Wie fühlst du dich gerade?",
		Do:  "Benenne das Gefühl und teile dein eigenes dazu.",
	},
	models.DomainSensory: {
		Say: "Wie fühlt sich das an?",
		Do:  "Lass das Kind in Ruhe tasten, riechen oder lauschen.",
	},
	models.DomainCognitive: {
		Say: "Wie viele findest du davon?",
		Do:  "Zählt gemeinsam laut und vergleicht die Funde.",
	},
}

// BuildFallbackPlan assembles an ActivityPlan directly from the
// adventure's own curated fields, without any external generator.
func BuildFallbackPlan(adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary) *models.ActivityPlan {
	steps := make([]string, 0, len(adventure.RouteSteps)+1)
	steps = append(steps, "Startpunkt: "+adventure.StartPoint)
	steps = append(steps, adventure.RouteSteps...)

	safetyNotes := append([]string(nil), adventure.Mitigations...)
	if len(safetyNotes) == 0 {
		safetyNotes = []string{"Kind immer in Sichtweite behalten. / Keep your child in sight at all times."}
	}

	summary := adventure.Short
	if weather != nil && weather.Summary != "" {
		summary = fmt.Sprintf("%s Wetter: %s.", summary, weather.Summary)
	}

	shortMinutes := criteria.AvailableMinutes()
	if adventure.DurationMinutes < shortMinutes {
		shortMinutes = adventure.DurationMinutes
	}
	variants := append([]string(nil), adventure.Variations...)
	variants = append(variants, fmt.Sprintf(
		"Kurzversion für %d Minuten: nur den ersten Abschnitt der Route gehen. / Short version for %d minutes: walk only the first leg.",
		shortMinutes, shortMinutes))

	plan := &models.ActivityPlan{
		Title:       adventure.Title,
		Summary:     summary,
		Steps:       steps,
		SafetyNotes: safetyNotes,
		Prompts:     buildPrompts(criteria.Goals),
		Variants:    variants,
		Supports:    supportedGoals(adventure, criteria),
	}
	return plan
}

// buildPrompts synthesizes 3-6 say/do pairs: two generic openers, one per
// requested goal, one generic closer.
func buildPrompts(goals []models.DevelopmentDomain) []models.ParentChildPrompt {
	prompts := []models.ParentChildPrompt{genericPrompts[0], genericPrompts[1]}
	for _, goal := range goals {
		// Leave room for the closer so the total stays within bounds.
		if len(prompts) == models.MaxPlanPrompts-1 {
			break
		}
		if p, ok := goalPrompts[goal]; ok {
			prompts = append(prompts, p)
		}
	}
	prompts = append(prompts, genericPrompts[2])
	return prompts
}

// supportedGoals names the developmental goals the plan addresses: the
// requested ones, or those the adventure's own tags signal.
func supportedGoals(adventure *models.MicroAdventure, criteria *models.SearchCriteria) []models.DevelopmentDomain {
	if len(criteria.Goals) > 0 {
		return append([]models.DevelopmentDomain(nil), criteria.Goals...)
	}

	signals := adventure.CombinedSignalTags()
	for _, benefit := range adventure.ToddlerBenefits {
		signals[benefit] = true
	}

	var supports []models.DevelopmentDomain
	for _, domain := range models.AllDevelopmentDomains {
		for _, tag := range recommend.GoalSignalTags[domain] {
			if signals[tag] {
				supports = append(supports, domain)
				break
			}
		}
	}
	return supports
}
