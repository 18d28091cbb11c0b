// Package recommend implements the deterministic filter/score/select core
// for the curated adventure catalog. Every function is a pure
// transformation of its inputs; the package holds no state.
package recommend

import "duesseldorf-family-adventures/internal/models"

// Theme connects a user-facing topic key to the catalog tags that satisfy it
type Theme struct {
	Key      string
	LabelDE  string
	LabelEN  string
	MatchTags []string
}

// Themes is the fixed topic vocabulary, in stable order
var Themes = []Theme{
	{Key: "nature", LabelDE: "Natur", LabelEN: "Nature", MatchTags: []string{"Natur"}},
	{Key: "movement", LabelDE: "Bewegung", LabelEN: "Movement", MatchTags: []string{"Bewegung", "Motorik", "Abenteuer"}},
	{Key: "creative", LabelDE: "Kreativ", LabelEN: "Creative", MatchTags: []string{"Kreativ", "Musik", "Sprache"}},
	{Key: "learning", LabelDE: "Lernen", LabelEN: "Learning", MatchTags: []string{"Lernen"}},
	{Key: "mindfulness", LabelDE: "Achtsamkeit", LabelEN: "Mindfulness", MatchTags: []string{"Achtsamkeit", "Ruhig"}},
	{Key: "social", LabelDE: "Sozial", LabelEN: "Social", MatchTags: []string{"Sozial", "Werte", "Bonding", "Alltag"}},
	{Key: "water", LabelDE: "Wasser", LabelEN: "Water", MatchTags: []string{"Wasser"}},
	{Key: "rain", LabelDE: "Regen", LabelEN: "Rain", MatchTags: []string{"Regen"}},
	{Key: "wind", LabelDE: "Wind", LabelEN: "Wind", MatchTags: []string{"Wind"}},
	{Key: "winter", LabelDE: "Winter", LabelEN: "Winter", MatchTags: []string{"Winter"}},
	{Key: "evening", LabelDE: "Abend", LabelEN: "Evening", MatchTags: []string{"Abend"}},
	{Key: "playground", LabelDE: "Spielplatz", LabelEN: "Playground", MatchTags: []string{"Spielplatz"}},
}

// GoalSignalTags maps each developmental domain to the catalog tags that
// signal it. One entry per enum value.
var GoalSignalTags = map[models.DevelopmentDomain][]string{
	models.DomainGrossMotor:      {"Bewegung", "Motorik", "Abenteuer", "Balance"},
	models.DomainFineMotor:       {"Kreativ", "Motorik", "Sammeln", "Basteln"},
	models.DomainLanguage:        {"Sprache", "Musik", "Lernen", "Erzählen"},
	models.DomainSocialEmotional: {"Sozial", "Bonding", "Werte", "Alltag"},
	models.DomainSensory:         {"Natur", "Wasser", "Sinne", "Achtsamkeit"},
	models.DomainCognitive:       {"Lernen", "Neugier", "Zählen", "Farben"},
}

// ThemeMatchTags returns the tag list for a topic key, or nil if unknown
func ThemeMatchTags(themeKey string) []string {
	for _, t := range Themes {
		if t.Key == themeKey {
			return t.MatchTags
		}
	}
	return nil
}

// MatchesThemes reports whether the adventure satisfies at least one of
// the requested topics. An empty topic list matches everything.
func MatchesThemes(adventure *models.MicroAdventure, topics []string) bool {
	if len(topics) == 0 {
		return true
	}
	signals := adventure.CombinedSignalTags()
	for _, themeKey := range topics {
		for _, tag := range ThemeMatchTags(themeKey) {
			if signals[tag] {
				return true
			}
		}
	}
	return false
}
