package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"duesseldorf-family-adventures/internal/models"
)

const (
	zippopotamBaseURL  = "https://api.zippopotam.us/de"
	openMeteoForecast  = "https://api.open-meteo.com/v1/forecast"
	openMeteoArchive   = "https://archive-api.open-meteo.com/v1/archive"
	weatherTimezone    = "Europe/Berlin"
	weatherCountryCode = "DE"
	weatherDataSource  = "open-meteo"
	weatherHTTPTimeout = 8 * time.Second
	geocodeHTTPTimeout = 6 * time.Second
)

// WeatherClient resolves a German postal code to coordinates and fetches
// the daily forecast for the target date.
type WeatherClient struct {
	httpClient  *http.Client
	retryConfig RetryConfig
}

// NewWeatherClient creates a weather client with default timeouts.
func NewWeatherClient() *WeatherClient {
	return &WeatherClient{
		httpClient:  &http.Client{Timeout: weatherHTTPTimeout},
		retryConfig: DefaultRetryConfig(),
	}
}

type geocodeResult struct {
	lat    float64
	lon    float64
	city   string
	region string
}

// GetWeatherSummary fetches the forecast for the criteria's date and
// postal code. All failures surface as errors; callers decide whether to
// degrade to the neutral summary.
func (w *WeatherClient) GetWeatherSummary(ctx context.Context, criteria *models.SearchCriteria) (*models.WeatherSummary, error) {
	var summary *models.WeatherSummary
	err := withRetries(ctx, w.retryConfig, "WEATHER", isTransientError, func() error {
		geo, err := w.geocodePostalCode(ctx, criteria.PostalCode)
		if err != nil {
			return err
		}
		raw, err := w.fetchDaily(ctx, geo.lat, geo.lon, criteria.Date)
		if err != nil {
			return err
		}
		summary = buildWeatherSummary(raw, geo, criteria.Date)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// NeutralSummary is the degraded result when the forecast is unavailable:
// unknown condition with the neutral cloudy planning tag.
func NeutralSummary(day time.Time) *models.WeatherSummary {
	return &models.WeatherSummary{
		Day:         day,
		Condition:   models.ConditionUnknown,
		Summary:     "Unbekannt / Unknown",
		DerivedTags: []string{models.WeatherTagCloudy},
	}
}

func (w *WeatherClient) geocodePostalCode(ctx context.Context, plz string) (*geocodeResult, error) {
	endpoint := fmt.Sprintf("%s/%s", zippopotamBaseURL, url.PathEscape(plz))
	body, err := w.getJSON(ctx, endpoint, geocodeHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed for %s: %w", plz, err)
	}

	var doc struct {
		Places []struct {
			PlaceName string `json:"place name"`
			State     string `json:"state"`
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"places"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse geocoding response: %w", err)
	}
	if len(doc.Places) == 0 {
		return nil, fmt.Errorf("no places found for postal code %s", plz)
	}

	place := doc.Places[0]
	lat, err := strconv.ParseFloat(place.Latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", place.Latitude, err)
	}
	lon, err := strconv.ParseFloat(place.Longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", place.Longitude, err)
	}
	return &geocodeResult{lat: lat, lon: lon, city: place.PlaceName, region: place.State}, nil
}

type openMeteoDaily struct {
	Daily struct {
		WeatherCode                 []int     `json:"weather_code"`
		TemperatureMax              []float64 `json:"temperature_2m_max"`
		TemperatureMin              []float64 `json:"temperature_2m_min"`
		PrecipitationSum            []float64 `json:"precipitation_sum"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		WindSpeedMax                []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

func (w *WeatherClient) fetchDaily(ctx context.Context, lat, lon float64, day time.Time) (*openMeteoDaily, error) {
	// The forecast endpoint covers today onward; past dates come from
	// the archive.
	base := openMeteoForecast
	if day.Before(time.Now().Truncate(24 * time.Hour)) {
		base = openMeteoArchive
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max,wind_speed_10m_max")
	params.Set("timezone", weatherTimezone)
	params.Set("start_date", day.Format("2006-01-02"))
	params.Set("end_date", day.Format("2006-01-02"))

	body, err := w.getJSON(ctx, base+"?"+params.Encode(), weatherHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("forecast fetch failed: %w", err)
	}

	var doc openMeteoDaily
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}
	return &doc, nil
}

func (w *WeatherClient) getJSON(ctx context.Context, endpoint string, timeout time.Duration) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func buildWeatherSummary(raw *openMeteoDaily, geo *geocodeResult, day time.Time) *models.WeatherSummary {
	summary := &models.WeatherSummary{
		Day:    day,
		City:   geo.city,
		Region: geo.region,
	}

	if len(raw.Daily.WeatherCode) > 0 {
		summary.Condition = conditionFromCode(raw.Daily.WeatherCode[0])
	} else {
		summary.Condition = models.ConditionUnknown
	}
	summary.Summary = conditionLabel(summary.Condition)

	if len(raw.Daily.TemperatureMax) > 0 {
		summary.TemperatureMaxC = &raw.Daily.TemperatureMax[0]
	}
	if len(raw.Daily.TemperatureMin) > 0 {
		summary.TemperatureMinC = &raw.Daily.TemperatureMin[0]
	}
	if len(raw.Daily.PrecipitationSum) > 0 {
		summary.PrecipitationSumMm = &raw.Daily.PrecipitationSum[0]
	}
	if len(raw.Daily.PrecipitationProbabilityMax) > 0 {
		summary.PrecipitationProbMaxPct = &raw.Daily.PrecipitationProbabilityMax[0]
	}
	if len(raw.Daily.WindSpeedMax) > 0 {
		summary.WindSpeedMaxKmh = &raw.Daily.WindSpeedMax[0]
	}

	summary.DerivedTags = models.DeriveWeatherTags(
		summary.TemperatureMaxC,
		summary.PrecipitationProbMaxPct,
		summary.PrecipitationSumMm,
		summary.WindSpeedMaxKmh,
	)

	log.Printf("[WEATHER] %s on %s: %s, tags=%v", geo.city, day.Format("2006-01-02"), summary.Summary, summary.DerivedTags)
	return summary
}

// conditionFromCode maps Open-Meteo weather codes to the coarse condition
func conditionFromCode(code int) models.WeatherCondition {
	switch {
	case code == 0:
		return models.ConditionSunny
	case code >= 1 && code <= 3:
		return models.ConditionCloudy
	case code == 45 || code == 48:
		return models.ConditionFoggy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return models.ConditionRainy
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return models.ConditionSnowy
	case code >= 95:
		return models.ConditionStormy
	default:
		return models.ConditionUnknown
	}
}

func conditionLabel(condition models.WeatherCondition) string {
	switch condition {
	case models.ConditionSunny:
		return "Sonnig / Sunny"
	case models.ConditionCloudy:
		return "Bewölkt / Cloudy"
	case models.ConditionRainy:
		return "Regen / Rain"
	case models.ConditionSnowy:
		return "Schnee / Snow"
	case models.ConditionStormy:
		return "Gewitter/Sturm / Storm"
	case models.ConditionFoggy:
		return "Nebel / Fog"
	default:
		return "Unbekannt / Unknown"
	}
}
