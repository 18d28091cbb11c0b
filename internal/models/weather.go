package models

import "time"

// WeatherCondition is the coarse condition derived from the forecast code
type WeatherCondition string

const (
	ConditionSunny   WeatherCondition = "sunny"
	ConditionCloudy  WeatherCondition = "cloudy"
	ConditionRainy   WeatherCondition = "rainy"
	ConditionStormy  WeatherCondition = "stormy"
	ConditionSnowy   WeatherCondition = "snowy"
	ConditionFoggy   WeatherCondition = "foggy"
	ConditionUnknown WeatherCondition = "unknown"
)

// WeatherSummary is the weather value consumed by scoring and plan text.
// It is a pure value; the recommendation core never fetches it. All numeric
// fields are optional.
type WeatherSummary struct {
	Day       time.Time        `json:"day"`
	Condition WeatherCondition `json:"condition"`
	Summary   string           `json:"summary_de_en"`

	TemperatureMaxC         *float64 `json:"temperature_max_c,omitempty"`
	TemperatureMinC         *float64 `json:"temperature_min_c,omitempty"`
	PrecipitationProbMaxPct *float64 `json:"precipitation_probability_max,omitempty"`
	PrecipitationSumMm      *float64 `json:"precipitation_sum_mm,omitempty"`
	WindSpeedMaxKmh         *float64 `json:"wind_speed_max_kmh,omitempty"`

	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`

	// DerivedTags use the catalog's weather vocabulary (Regen, Wind, Heiß,
	// Kalt, Bewölkt) so scoring can intersect them with adventure tags.
	DerivedTags []string `json:"derived_tags"`
}

// HasTag reports whether a derived tag is present
func (w *WeatherSummary) HasTag(tag string) bool {
	for _, t := range w.DerivedTags {
		if t == tag {
			return true
		}
	}
	return false
}

// DeriveWeatherTags maps the numeric forecast onto qualitative tags. When
// nothing stands out the generic "Bewölkt" tag is returned so downstream
// consumers always see at least one tag.
func DeriveWeatherTags(tempMaxC, precipProbMaxPct, precipSumMm, windMaxKmh *float64) []string {
	var tags []string

	if precipProbMaxPct != nil && *precipProbMaxPct >= 40 {
		tags = append(tags, WeatherTagRain)
	}
	if precipSumMm != nil && *precipSumMm >= 0.5 && !contains(tags, WeatherTagRain) {
		tags = append(tags, WeatherTagRain)
	}
	if windMaxKmh != nil && *windMaxKmh >= 25 {
		tags = append(tags, WeatherTagWind)
	}
	if tempMaxC != nil && *tempMaxC >= 27 {
		tags = append(tags, WeatherTagHot)
	}
	if tempMaxC != nil && *tempMaxC <= 5 {
		tags = append(tags, WeatherTagCold)
	}

	if len(tags) == 0 {
		tags = append(tags, WeatherTagCloudy)
	}
	return tags
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
