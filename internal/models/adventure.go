package models

import (
	"fmt"
	"sort"
)

// EnergyLevel describes how much physical energy an adventure demands
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "niedrig"
	EnergyMedium EnergyLevel = "mittel"
	EnergyHigh   EnergyLevel = "hoch"
)

// Difficulty describes how demanding an adventure is for the accompanying adult
type Difficulty string

const (
	DifficultyEasy      Difficulty = "leicht"
	DifficultyMedium    Difficulty = "mittel"
	DifficultyDemanding Difficulty = "anspruchsvoll"
)

// SafetyLevel describes the residual risk of an adventure with a toddler
type SafetyLevel string

const (
	SafetyLow      SafetyLevel = "niedrig"
	SafetyMedium   SafetyLevel = "mittel"
	SafetyElevated SafetyLevel = "erhöht"
)

// Season tags an adventure may carry (fixed vocabulary)
const (
	SeasonSpring = "Frühling"
	SeasonSummer = "Sommer"
	SeasonAutumn = "Herbst"
	SeasonWinter = "Winter"
)

// Weather tags an adventure may carry (fixed vocabulary, shared with WeatherSummary)
const (
	WeatherTagSun    = "Sonne"
	WeatherTagCloudy = "Bewölkt"
	WeatherTagRain   = "Regen"
	WeatherTagWind   = "Wind"
	WeatherTagCold   = "Kalt"
	WeatherTagHot    = "Heiß"
)

// MicroAdventure represents a single curated catalog entry: a short,
// toddler-sized outdoor or indoor activity with everything a parent
// needs to run it.
type MicroAdventure struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Area  string `json:"area"`
	Short string `json:"short"`

	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
	BestTime        string  `json:"best_time"`
	StrollerOK      bool    `json:"stroller_ok"`

	StartPoint      string   `json:"start_point"`
	RouteSteps      []string `json:"route_steps"`
	Preparation     []string `json:"preparation"`
	PackingList     []string `json:"packing_list"`
	ExecutionTips   []string `json:"execution_tips"`
	Variations      []string `json:"variations"`
	ToddlerBenefits []string `json:"toddler_benefits"`
	ParentTip       string   `json:"parent_tip"`

	Risks       []string `json:"risks"`
	Mitigations []string `json:"mitigations"`

	Tags          []string `json:"tags"`
	Accessibility []string `json:"accessibility,omitempty"`

	SeasonTags  []string    `json:"season_tags,omitempty"`
	WeatherTags []string    `json:"weather_tags,omitempty"`
	EnergyLevel EnergyLevel `json:"energy_level"`
	Difficulty  Difficulty  `json:"difficulty"`
	AgeMin      float64     `json:"age_min"`
	AgeMax      float64     `json:"age_max"`
	MoodTags    []string    `json:"mood_tags,omitempty"`
	SafetyLevel SafetyLevel `json:"safety_level"`
}

// ValidEnergyLevel checks if the energy level literal is recognized
func ValidEnergyLevel(level EnergyLevel) bool {
	switch level {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// ValidDifficulty checks if the difficulty literal is recognized
func ValidDifficulty(difficulty Difficulty) bool {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyDemanding:
		return true
	}
	return false
}

// ValidSafetyLevel checks if the safety level literal is recognized
func ValidSafetyLevel(level SafetyLevel) bool {
	switch level {
	case SafetyLow, SafetyMedium, SafetyElevated:
		return true
	}
	return false
}

// ValidSeasonTag checks the tag against the fixed season vocabulary
func ValidSeasonTag(tag string) bool {
	switch tag {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}

// ValidWeatherTag checks the tag against the fixed weather vocabulary
func ValidWeatherTag(tag string) bool {
	switch tag {
	case WeatherTagSun, WeatherTagCloudy, WeatherTagRain, WeatherTagWind, WeatherTagCold, WeatherTagHot:
		return true
	}
	return false
}

// Validate checks all catalog invariants for a single adventure
func (a *MicroAdventure) Validate() error {
	if a.Slug == "" {
		return fmt.Errorf("adventure slug must not be empty")
	}
	if a.Title == "" {
		return fmt.Errorf("%s: title missing", a.Slug)
	}
	if a.DurationMinutes <= 0 {
		return fmt.Errorf("%s: duration_minutes must be > 0", a.Slug)
	}
	if a.DistanceKm < 0 {
		return fmt.Errorf("%s: distance_km must be >= 0", a.Slug)
	}
	if a.AgeMin < 0 || a.AgeMax < 0 || a.AgeMin > a.AgeMax {
		return fmt.Errorf("%s: invalid age range [%.1f, %.1f]", a.Slug, a.AgeMin, a.AgeMax)
	}
	if !ValidEnergyLevel(a.EnergyLevel) {
		return fmt.Errorf("%s: invalid energy_level=%q", a.Slug, a.EnergyLevel)
	}
	if !ValidDifficulty(a.Difficulty) {
		return fmt.Errorf("%s: invalid difficulty=%q", a.Slug, a.Difficulty)
	}
	if !ValidSafetyLevel(a.SafetyLevel) {
		return fmt.Errorf("%s: invalid safety_level=%q", a.Slug, a.SafetyLevel)
	}
	for _, s := range a.SeasonTags {
		if !ValidSeasonTag(s) {
			return fmt.Errorf("%s: unknown season_tag=%q", a.Slug, s)
		}
	}
	for _, w := range a.WeatherTags {
		if !ValidWeatherTag(w) {
			return fmt.Errorf("%s: unknown weather_tag=%q", a.Slug, w)
		}
	}
	if len(a.RouteSteps) == 0 {
		return fmt.Errorf("%s: route_steps must not be empty", a.Slug)
	}
	if len(a.ToddlerBenefits) == 0 {
		return fmt.Errorf("%s: toddler_benefits must not be empty", a.Slug)
	}
	return nil
}

// CombinedSignalTags returns the union of all tag-like fields used for
// theme and goal matching.
func (a *MicroAdventure) CombinedSignalTags() map[string]bool {
	signals := make(map[string]bool, len(a.Tags)+len(a.WeatherTags)+len(a.MoodTags)+len(a.SeasonTags))
	for _, t := range a.Tags {
		signals[t] = true
	}
	for _, t := range a.WeatherTags {
		signals[t] = true
	}
	for _, t := range a.MoodTags {
		signals[t] = true
	}
	for _, t := range a.SeasonTags {
		signals[t] = true
	}
	return signals
}

// EnsureUniqueSlugs verifies that no slug appears twice in the catalog.
// A violation is a load-time fatal error for the caller.
func EnsureUniqueSlugs(adventures []MicroAdventure) error {
	seen := make(map[string]bool, len(adventures))
	var dupes []string
	for _, a := range adventures {
		if seen[a.Slug] {
			dupes = append(dupes, a.Slug)
		}
		seen[a.Slug] = true
	}
	if len(dupes) > 0 {
		sort.Strings(dupes)
		return fmt.Errorf("duplicate slugs found: %v", dupes)
	}
	return nil
}
