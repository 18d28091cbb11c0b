// Package library provides the vetted offline activity library and the
// scorer that suggests entries without any external service call.
package library

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"duesseldorf-family-adventures/internal/models"
)

// Item is one vetted entry of the offline activity library.
type Item struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	DomainTags       []string             `json:"domain_tags"`
	AgeMinYears      float64              `json:"age_min_years"`
	AgeMaxYears      float64              `json:"age_max_years"`
	IndoorOutdoor    models.IndoorOutdoor `json:"indoor_outdoor"`
	DurationMin      int                  `json:"duration_min"`
	Materials        []string             `json:"materials"`
	SafetyNotes      []string             `json:"safety_notes"`
	Effort           models.Effort        `json:"effort"`
	EstimatedCostEur float64              `json:"estimated_cost_eur"`
}

// Suggestion is an offline match surfaced to the user.
type Suggestion struct {
	Title           string               `json:"title"`
	Date            time.Time            `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Location        string               `json:"location"`
	ExpectedCostEur float64              `json:"expected_cost_eur"`
	IndoorOutdoor   models.IndoorOutdoor `json:"indoor_outdoor"`
	Description     string               `json:"description"`
	Reason          string               `json:"reason_de_en"`
	SourceURLs      []string             `json:"source_urls"`
}

const (
	offlineLocation = "Offline Activity Library"
	noMatchWarning  = "Keine Offline-Treffer gefunden. Bitte Budget/Zeit/Topics anpassen. / No offline matches found."

	// defaultLibraryAgeYears applies when the criteria carry no child age;
	// the library also serves school-age activities.
	defaultLibraryAgeYears = 6.0
)

// Load returns the built-in library.
func Load() []Item {
	out := make([]Item, len(builtinItems))
	copy(out, builtinItems)
	return out
}

// ScoreItem rates a library item against the criteria for the given
// child age. Negative scores mark an unsuitable item.
func ScoreItem(item *Item, criteria *models.SearchCriteria, childAgeYears float64) float64 {
	score := 0.0

	if item.AgeMinYears <= childAgeYears && childAgeYears <= item.AgeMaxYears {
		score += 3.0
	} else {
		score -= 4.0
	}

	if item.DurationMin <= criteria.AvailableMinutes() {
		score += 1.5
	}

	if item.EstimatedCostEur <= criteria.BudgetEurMax {
		score += 1.5
	} else {
		score -= 2.0
	}

	if item.Effort == criteria.Effort {
		score += 1.0
	}

	if criteria.LocationPreference == item.IndoorOutdoor {
		score += 1.0
	} else if criteria.LocationPreference == models.LocationMixed {
		score += 0.3
	}

	overlap := 0
	tags := make(map[string]bool, len(item.DomainTags))
	for _, tag := range item.DomainTags {
		tags[tag] = true
	}
	for _, topic := range criteria.Topics {
		if tags[topic] {
			overlap++
		}
	}
	topicBonus := 0.6 * float64(overlap)
	if topicBonus > 2.0 {
		topicBonus = 2.0
	}
	return score + topicBonus
}

// Suggest scores the whole library against the criteria and returns up
// to max_suggestions non-negative matches, best first. An empty result
// is legitimate and reported through the returned warnings.
func Suggest(criteria *models.SearchCriteria) ([]Suggestion, []string) {
	childAge := defaultLibraryAgeYears
	if criteria.ChildAgeYears != nil {
		childAge = *criteria.ChildAgeYears
	}

	items := Load()
	sort.SliceStable(items, func(i, j int) bool {
		return ScoreItem(&items[i], criteria, childAge) > ScoreItem(&items[j], criteria, childAge)
	})

	var suggestions []Suggestion
	for i := range items {
		if len(suggestions) >= criteria.MaxSuggestions {
			break
		}
		item := &items[i]
		if ScoreItem(item, criteria, childAge) < 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Title:           item.Title,
			Date:            criteria.Date,
			StartTime:       criteria.TimeWindow.Start.Format("15:04"),
			EndTime:         criteria.TimeWindow.End.Format("15:04"),
			Location:        offlineLocation,
			ExpectedCostEur: item.EstimatedCostEur,
			IndoorOutdoor:   item.IndoorOutdoor,
			Description:     item.Description,
			Reason:          matchReason(item),
			SourceURLs:      []string{},
		})
	}

	var warnings []string
	if len(suggestions) == 0 {
		warnings = append(warnings, noMatchWarning)
	}
	return suggestions, warnings
}

func matchReason(item *Item) string {
	payload := map[string]interface{}{
		"age":          fmt.Sprintf("%.1f-%.1f", item.AgeMinYears, item.AgeMaxYears),
		"domain_tags":  item.DomainTags,
		"materials":    item.Materials,
		"safety_notes": item.SafetyNotes,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "Offline-Bibliothek Treffer / Offline library match"
	}
	return "Offline-Bibliothek Treffer / Offline library match: " + string(encoded)
}
