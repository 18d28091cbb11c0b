package recommend

import (
	"strings"

	"duesseldorf-family-adventures/internal/models"
)

// PreferredArea gets a small affinity bonus so the default neighbourhood
// wins ties against otherwise equal candidates.
const PreferredArea = "Volksgarten"

// Scoring weights. Only relative order within one filtered set matters;
// scores are not comparable across calls with different criteria.
const (
	areaAffinityBonus   = 1.5
	topicMatchBonus     = 1.0
	weatherTagBonus     = 1.25
	rainElevatedPenalty = 0.25
	effortAlignBonus    = 0.5
	highEffortAltBonus  = 0.25
	goalMatchBonus      = 1.0
	lowSafetyBonus      = 0.2
)

// ScoreAdventure assigns the additive relevance score for one candidate.
// Inputs are assumed pre-validated; the function never fails.
func ScoreAdventure(adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary) float64 {
	score := 0.0

	if strings.Contains(adventure.Area, PreferredArea) {
		score += areaAffinityBonus
	}

	if len(criteria.Topics) > 0 {
		signals := adventure.CombinedSignalTags()
		for _, themeKey := range criteria.Topics {
			for _, tag := range ThemeMatchTags(themeKey) {
				if signals[tag] {
					score += topicMatchBonus
					break
				}
			}
		}
	}

	if weather != nil {
		for _, wt := range weather.DerivedTags {
			for _, at := range adventure.WeatherTags {
				if wt == at {
					score += weatherTagBonus
					break
				}
			}
		}
		// Rainy days and slippery, higher-risk routes do not mix well
		// with toddlers.
		if weather.HasTag(models.WeatherTagRain) && adventure.SafetyLevel == models.SafetyElevated {
			score -= rainElevatedPenalty
		}
	}

	switch criteria.Effort {
	case models.EffortLow:
		if adventure.EnergyLevel == models.EnergyLow {
			score += effortAlignBonus
		}
		if adventure.Difficulty == models.DifficultyEasy {
			score += effortAlignBonus
		}
	case models.EffortHigh:
		if adventure.EnergyLevel == models.EnergyHigh {
			score += effortAlignBonus
		}
		if adventure.Difficulty == models.DifficultyMedium || adventure.Difficulty == models.DifficultyDemanding {
			score += highEffortAltBonus
		}
	}

	if len(criteria.Goals) > 0 {
		goalSignals := goalSignalSet(adventure)
		for _, goal := range criteria.Goals {
			for _, tag := range GoalSignalTags[goal] {
				if goalSignals[tag] {
					score += goalMatchBonus
					break
				}
			}
		}
	}

	if adventure.SafetyLevel == models.SafetyLow {
		score += lowSafetyBonus
	}

	return score
}

// goalSignalSet unions benefits, tags and mood tags for goal matching
func goalSignalSet(adventure *models.MicroAdventure) map[string]bool {
	signals := make(map[string]bool, len(adventure.ToddlerBenefits)+len(adventure.Tags)+len(adventure.MoodTags))
	for _, t := range adventure.ToddlerBenefits {
		signals[t] = true
	}
	for _, t := range adventure.Tags {
		signals[t] = true
	}
	for _, t := range adventure.MoodTags {
		signals[t] = true
	}
	return signals
}
