package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Effort is the user-selected overall effort level for the day
type Effort string

const (
	EffortLow    Effort = "niedrig"
	EffortMedium Effort = "mittel"
	EffortHigh   Effort = "hoch"
)

// IndoorOutdoor is the user's location preference
type IndoorOutdoor string

const (
	LocationIndoor  IndoorOutdoor = "indoor"
	LocationOutdoor IndoorOutdoor = "outdoor"
	LocationMixed   IndoorOutdoor = "mixed"
)

// DevelopmentDomain is one of the six fixed developmental goal categories
type DevelopmentDomain string

const (
	DomainGrossMotor      DevelopmentDomain = "Grobmotorik"
	DomainFineMotor       DevelopmentDomain = "Feinmotorik"
	DomainLanguage        DevelopmentDomain = "Sprache"
	DomainSocialEmotional DevelopmentDomain = "Sozial-emotional"
	DomainSensory         DevelopmentDomain = "Sensorik"
	DomainCognitive       DevelopmentDomain = "Kognitiv"
)

// AllDevelopmentDomains lists the fixed six-value enum in stable order
var AllDevelopmentDomains = []DevelopmentDomain{
	DomainGrossMotor,
	DomainFineMotor,
	DomainLanguage,
	DomainSocialEmotional,
	DomainSensory,
	DomainCognitive,
}

// Limits on list-valued criteria fields
const (
	MaxTopics         = 8
	MaxGoals          = 2
	MaxConstraints    = 6
	MaxMaterials      = 7
	MaxFreeTextLength = 80
	MinRadiusKm       = 0.5
	MaxRadiusKm       = 50.0
	MaxBudgetEur      = 250.0
	MaxChildAgeYears  = 18.0
	MinMaxSuggestions = 1
	MaxMaxSuggestions = 10
)

// TimeWindow is the planned start/end of the activity on the chosen day
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SearchCriteria is the validated, immutable search input. Construct it via
// NewSearchCriteria only; the zero value is not usable.
type SearchCriteria struct {
	PostalCode string    `json:"plz"`
	RadiusKm   float64   `json:"radius_km"`
	Date       time.Time `json:"date"`

	TimeWindow TimeWindow `json:"time_window"`

	Effort       Effort  `json:"effort"`
	BudgetEurMax float64 `json:"budget_eur_max"`

	// ChildAgeYears is optional; nil means "no age filtering".
	ChildAgeYears *float64 `json:"child_age_years,omitempty"`

	Topics             []string            `json:"topics"`
	LocationPreference IndoorOutdoor       `json:"location_preference"`
	Goals              []DevelopmentDomain `json:"goals,omitempty"`
	Constraints        []string            `json:"constraints,omitempty"`
	AvailableMaterials []string            `json:"available_materials,omitempty"`

	MaxSuggestions int `json:"max_suggestions"`
}

// CriteriaInput carries the raw, unvalidated form values for construction
type CriteriaInput struct {
	PostalCode         string
	RadiusKm           float64
	Date               time.Time
	StartTime          time.Time
	EndTime            time.Time
	Effort             Effort
	BudgetEurMax       float64
	ChildAgeYears      *float64
	Topics             []string
	LocationPreference IndoorOutdoor
	Goals              []DevelopmentDomain
	Constraints        []string
	AvailableMaterials []string
	MaxSuggestions     int
}

// ValidationError aggregates every violated field so a form can show all
// problems at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid search criteria: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

var (
	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
	freeTextStripper  = regexp.MustCompile(`[^\pL\pN \.,!\?'\-]`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
)

// NewSearchCriteria validates and normalizes the raw input. It fails fast:
// malformed input is rejected with a ValidationError listing every violated
// field, never silently repaired beyond the documented trim/casefold/dedup.
func NewSearchCriteria(in CriteriaInput) (*SearchCriteria, error) {
	verr := &ValidationError{}

	plz := strings.TrimSpace(in.PostalCode)
	if !postalCodePattern.MatchString(plz) {
		verr.add("plz", "must contain exactly 5 digits")
	}

	if in.RadiusKm < MinRadiusKm || in.RadiusKm > MaxRadiusKm {
		verr.add("radius_km", fmt.Sprintf("must be between %.1f and %.1f", MinRadiusKm, MaxRadiusKm))
	}

	if in.Date.IsZero() {
		verr.add("date", "must be set")
	}

	start := combine(in.Date, in.StartTime)
	end := combine(in.Date, in.EndTime)
	if !end.After(start) {
		verr.add("time_window", "end must be after start")
	}

	switch in.Effort {
	case EffortLow, EffortMedium, EffortHigh:
	default:
		verr.add("effort", fmt.Sprintf("must be one of %q, %q, %q", EffortLow, EffortMedium, EffortHigh))
	}

	if in.BudgetEurMax < 0 || in.BudgetEurMax > MaxBudgetEur {
		verr.add("budget_eur_max", fmt.Sprintf("must be between 0 and %.0f", MaxBudgetEur))
	}

	if in.ChildAgeYears != nil && (*in.ChildAgeYears < 0 || *in.ChildAgeYears > MaxChildAgeYears) {
		verr.add("child_age_years", fmt.Sprintf("must be between 0 and %.0f", MaxChildAgeYears))
	}

	topics := normalizeTopics(in.Topics)
	if len(topics) > MaxTopics {
		verr.add("topics", fmt.Sprintf("supports at most %d entries", MaxTopics))
	}

	location := in.LocationPreference
	if location == "" {
		location = LocationMixed
	}
	switch location {
	case LocationIndoor, LocationOutdoor, LocationMixed:
	default:
		verr.add("location_preference", "must be indoor, outdoor or mixed")
	}

	goals := dedupeGoals(in.Goals)
	if len(goals) > MaxGoals {
		verr.add("goals", fmt.Sprintf("requires 1-%d domains", MaxGoals))
	}
	for _, g := range goals {
		if !ValidDevelopmentDomain(g) {
			verr.add("goals", fmt.Sprintf("unknown development domain %q", g))
			break
		}
	}

	constraints := SanitizeFreeTextList(in.Constraints, MaxFreeTextLength)
	if len(constraints) > MaxConstraints {
		verr.add("constraints", fmt.Sprintf("supports at most %d entries", MaxConstraints))
	}

	materials := SanitizeFreeTextList(in.AvailableMaterials, MaxFreeTextLength)
	if len(materials) > MaxMaterials {
		verr.add("available_materials", fmt.Sprintf("supports at most %d entries", MaxMaterials))
	}

	maxSuggestions := in.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = 5
	}
	if maxSuggestions < MinMaxSuggestions || maxSuggestions > MaxMaxSuggestions {
		verr.add("max_suggestions", fmt.Sprintf("must be between %d and %d", MinMaxSuggestions, MaxMaxSuggestions))
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &SearchCriteria{
		PostalCode:         plz,
		RadiusKm:           in.RadiusKm,
		Date:               in.Date,
		TimeWindow:         TimeWindow{Start: start, End: end},
		Effort:             in.Effort,
		BudgetEurMax:       in.BudgetEurMax,
		ChildAgeYears:      in.ChildAgeYears,
		Topics:             topics,
		LocationPreference: location,
		Goals:              goals,
		Constraints:        constraints,
		AvailableMaterials: materials,
		MaxSuggestions:     maxSuggestions,
	}, nil
}

// AvailableMinutes derives the usable time budget from the time window
func (c *SearchCriteria) AvailableMinutes() int {
	return int(c.TimeWindow.End.Sub(c.TimeWindow.Start).Minutes())
}

// ValidDevelopmentDomain checks the literal against the fixed enum
func ValidDevelopmentDomain(d DevelopmentDomain) bool {
	for _, known := range AllDevelopmentDomains {
		if d == known {
			return true
		}
	}
	return false
}

// normalizeTopics trims, casefolds and deduplicates topic keys,
// preserving first-seen order.
func normalizeTopics(topics []string) []string {
	cleaned := make([]string, 0, len(topics))
	seen := make(map[string]bool, len(topics))
	for _, raw := range topics {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" || seen[key] {
			continue
		}
		cleaned = append(cleaned, key)
		seen[key] = true
	}
	return cleaned
}

func dedupeGoals(goals []DevelopmentDomain) []DevelopmentDomain {
	out := make([]DevelopmentDomain, 0, len(goals))
	seen := make(map[DevelopmentDomain]bool, len(goals))
	for _, g := range goals {
		if g == "" || seen[g] {
			continue
		}
		out = append(out, g)
		seen[g] = true
	}
	return out
}

// SanitizeFreeTextList applies the documented free-text rules: strip
// special characters, collapse whitespace, cap the length, drop empties
// and case-insensitive duplicates (keeping the first spelling).
func SanitizeFreeTextList(items []string, maxLen int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, raw := range items {
		cleaned := freeTextStripper.ReplaceAllString(raw, "")
		cleaned = strings.TrimSpace(whitespaceRuns.ReplaceAllString(cleaned, " "))
		if cleaned == "" {
			continue
		}
		if runes := []rune(cleaned); len(runes) > maxLen {
			cleaned = strings.TrimSpace(string(runes[:maxLen]))
		}
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		out = append(out, cleaned)
		seen[key] = true
	}
	return out
}

func combine(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
