package recommend

import "duesseldorf-family-adventures/internal/models"

// FilterAdventures removes catalog entries that categorically violate the
// criteria. The result preserves catalog order. An empty result is a valid
// outcome here; the daily-pick selector decides whether to fall back.
func FilterAdventures(adventures []models.MicroAdventure, criteria *models.SearchCriteria) []models.MicroAdventure {
	available := criteria.AvailableMinutes()
	var results []models.MicroAdventure

	for i := range adventures {
		a := &adventures[i]

		if a.DurationMinutes > available {
			continue
		}

		// Effort gating: low effort rejects high energy and anything
		// beyond easy; medium effort only rejects demanding entries.
		switch criteria.Effort {
		case models.EffortLow:
			if a.EnergyLevel == models.EnergyHigh {
				continue
			}
			if a.Difficulty != models.DifficultyEasy {
				continue
			}
		case models.EffortMedium:
			if a.Difficulty == models.DifficultyDemanding {
				continue
			}
		}

		if !MatchesThemes(a, criteria.Topics) {
			continue
		}

		if criteria.ChildAgeYears != nil {
			age := *criteria.ChildAgeYears
			if age < a.AgeMin || age > a.AgeMax {
				continue
			}
		}

		results = append(results, *a)
	}

	return results
}
