package weather

import (
	"strings"
	"testing"

	"weather-skill/internal/types"
)

func TestCompass(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected string
	}{
		{0, "North"},
		{22, "North"},
		{22.5, "Northeast"},
		{45, "Northeast"},
		{100, "East"},
		{135, "Southeast"},
		{180, "South"},
		{225, "Southwest"},
		{270, "West"},
		{315, "Northwest"},
		{337.4, "Northwest"},
		{337.5, "North"},
		{359, "North"},
		{-90, "West"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := Compass(tt.bearing)
			if result != tt.expected {
				t.Errorf("Compass(%v) = %q, want %q", tt.bearing, result, tt.expected)
			}
		})
	}
}

func fullForecast() *Forecast {
	return &Forecast{
		Place: types.Place{FormattedAddress: "Washington, DC, USA"},
		Current: &CurrentConditions{
			Summary:             "Clear",
			Icon:                "clear-day",
			Temperature:         71.3,
			ApparentTemperature: 74.8,
			DewPoint:            48.9,
			Humidity:            0.456,
		},
		NextHour:    &Outlook{Summary: "Clear for the hour."},
		Next24Hours: &DayOutlook{Summary: "Partly cloudy tonight.", HasRange: true, High: 70, Low: 50},
		Next7Days:   &Outlook{Summary: "No precipitation throughout the week."},
	}
}

func TestPlain(t *testing.T) {
	expected := "Here's the forecast for Washington, DC, USA" +
		"\nRight now: Clear, 71° but it feels like 75°, with 45% humidity, and a dew point of 49°." +
		"\nNext hour: Clear for the hour." +
		"\nNext 24 hours: Partly cloudy tonight, with a high of 70° and a low of 50°." +
		"\nNext 7 days: No precipitation throughout the week."

	if got := Plain(fullForecast()); got != expected {
		t.Errorf("Plain() =\n%s\nwant\n%s", got, expected)
	}
}

func TestSSML(t *testing.T) {
	f := fullForecast()
	f.Place.FormattedAddress = "Bert & Ernie's, Sesame St"

	expected := `<p>Here's the forecast for <say-as interpret-as="address">Bert &amp; Ernie&apos;s, Sesame St</say-as></p>` +
		"<p>Right now: Clear, 71° but it feels like 75°, with 45% humidity, and a dew point of 49°.</p>" +
		"<p>Next hour: Clear for the hour.</p>" +
		"<p>Next 24 hours: Partly cloudy tonight, with a high of 70° and a low of 50°.</p>" +
		"<p>Next 7 days: No precipitation throughout the week.</p>"

	if got := SSML(f); got != expected {
		t.Errorf("SSML() =\n%s\nwant\n%s", got, expected)
	}
}

func TestRender_FeelsLike(t *testing.T) {
	tests := []struct {
		name        string
		temperature types.Degrees
		apparent    types.Degrees
		wantClause  bool
	}{
		{name: "equal", temperature: 60, apparent: 60, wantClause: false},
		{name: "equal after rounding", temperature: 60.2, apparent: 59.6, wantClause: false},
		{name: "different", temperature: 60, apparent: 55, wantClause: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Forecast{Current: &CurrentConditions{
				Summary:             "Cloudy",
				Temperature:         tt.temperature,
				ApparentTemperature: tt.apparent,
			}}
			got := strings.Contains(Plain(f), "feels like")
			if got != tt.wantClause {
				t.Errorf("feels like clause present = %v, want %v in %q", got, tt.wantClause, Plain(f))
			}
		})
	}
}

func TestRender_Sections(t *testing.T) {
	tests := []struct {
		name     string
		forecast *Forecast
		expected string
	}{
		{
			name:     "address only",
			forecast: &Forecast{Place: types.Place{FormattedAddress: "Paris, France"}},
			expected: "Here's the forecast for Paris, France",
		},
		{
			name: "next 24 hours without range",
			forecast: &Forecast{
				Place:       types.Place{FormattedAddress: "Paris, France"},
				Next24Hours: &DayOutlook{Summary: "Drizzle."},
			},
			expected: "Here's the forecast for Paris, France\nNext 24 hours: Drizzle.",
		},
		{
			name: "storm proximity",
			forecast: &Forecast{
				Place: types.Place{FormattedAddress: "Paris, France"},
				Current: &CurrentConditions{
					Summary:             "Humid",
					Temperature:         80,
					ApparentTemperature: 80,
					DewPoint:            70,
					Humidity:            0.8,
					Storm:               &Storm{DistanceMiles: 12.4, Bearing: 100},
				},
			},
			expected: "Here's the forecast for Paris, France" +
				"\nRight now: Humid, 80°, with 80% humidity, and a dew point of 70°. The nearest storm is 12 miles away to the East.",
		},
		{
			name: "storm one mile away",
			forecast: &Forecast{
				Current: &CurrentConditions{
					Summary: "Windy",
					Storm:   &Storm{DistanceMiles: 1, Bearing: 270},
				},
			},
			expected: "Here's the forecast for " +
				"\nRight now: Windy, 0°, with 0% humidity, and a dew point of 0°. The nearest storm is 1 mile away to the West.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plain(tt.forecast); got != tt.expected {
				t.Errorf("Plain() =\n%q\nwant\n%q", got, tt.expected)
			}
		})
	}
}
