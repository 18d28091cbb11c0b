package models

import "testing"

func f(v float64) *float64 { return &v }

func TestDeriveWeatherTags(t *testing.T) {
	cases := []struct {
		name       string
		tempMax    *float64
		precipProb *float64
		precipSum  *float64
		windMax    *float64
		want       []string
	}{
		{"rain by probability", f(12), f(60), f(0.0), f(10), []string{WeatherTagRain}},
		{"rain by amount", f(12), f(10), f(2.5), f(10), []string{WeatherTagRain}},
		{"windy", f(12), nil, nil, f(30), []string{WeatherTagWind}},
		{"hot", f(29), f(0), f(0), f(5), []string{WeatherTagHot}},
		{"cold", f(2), f(0), f(0), f(5), []string{WeatherTagCold}},
		{"nothing stands out", f(18), f(5), f(0), f(10), []string{WeatherTagCloudy}},
		{"all nil", nil, nil, nil, nil, []string{WeatherTagCloudy}},
		{"rain and wind and cold", f(3), f(80), f(4.0), f(40), []string{WeatherTagRain, WeatherTagWind, WeatherTagCold}},
	}

	for _, tc := range cases {
		got := DeriveWeatherTags(tc.tempMax, tc.precipProb, tc.precipSum, tc.windMax)
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected tags %v, got %v", tc.name, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: expected tags %v, got %v", tc.name, tc.want, got)
				break
			}
		}
	}
}

func TestWeatherSummaryHasTag(t *testing.T) {
	w := WeatherSummary{DerivedTags: []string{WeatherTagRain, WeatherTagWind}}
	if !w.HasTag(WeatherTagRain) {
		t.Error("Expected HasTag to find Regen")
	}
	if w.HasTag(WeatherTagHot) {
		t.Error("Expected HasTag to miss Heiß")
	}
}
