package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"weather-skill/internal/providers/darksky"
	"weather-skill/internal/types"
)

type mockForecastProvider struct {
	response *darksky.ForecastAPIResponse
	err      error
	calls    int
}

func (m *mockForecastProvider) GetForecast(ctx context.Context, coords types.Coords) (*darksky.ForecastAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func float(v float64) *float64 {
	return &v
}

var testPlace = types.Place{
	Coordinates:      types.NewCoords(38.9072, -77.0369),
	FormattedAddress: "Washington, DC, USA",
}

func TestMinFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "single value", input: []float64{5.5}, expected: 5.5},
		{name: "multiple values", input: []float64{5.5, 2.2, 8.8, 1.1}, expected: 1.1},
		{name: "negative values", input: []float64{-5.5, -2.2, -8.8}, expected: -8.8},
		{name: "empty", input: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := minFloat(tt.input)
			if result != tt.expected {
				t.Errorf("minFloat(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMaxFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "single value", input: []float64{5.5}, expected: 5.5},
		{name: "multiple values", input: []float64{5.5, 2.2, 8.8, 1.1}, expected: 8.8},
		{name: "negative values", input: []float64{-5.5, -2.2, -8.8}, expected: -2.2},
		{name: "empty", input: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maxFloat(tt.input)
			if result != tt.expected {
				t.Errorf("maxFloat(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWeatherService_GetForecast(t *testing.T) {
	tests := []struct {
		name        string
		response    *darksky.ForecastAPIResponse
		providerErr error
		wantErr     error
		errContains string
		validate    func(*testing.T, *Forecast)
	}{
		{
			name: "all sections",
			response: &darksky.ForecastAPIResponse{
				Timezone: "America/New_York",
				Currently: &darksky.DataPoint{
					Summary:              "Clear",
					Icon:                 "clear-day",
					Temperature:          71.3,
					ApparentTemperature:  72.1,
					Humidity:             0.45,
					DewPoint:             48.9,
					NearestStormDistance: float(12),
					NearestStormBearing:  float(100),
				},
				Minutely: &darksky.DataBlock{Summary: "Clear for the hour."},
				Hourly: &darksky.DataBlock{
					Summary: "Partly cloudy tonight.",
					Data:    []darksky.DataPoint{{ApparentTemperature: 50}, {ApparentTemperature: 70}},
				},
				Daily: &darksky.DataBlock{Summary: "No precipitation throughout the week."},
			},
			validate: func(t *testing.T, f *Forecast) {
				if f.Place != testPlace {
					t.Errorf("Place = %+v", f.Place)
				}
				if f.Current == nil || f.NextHour == nil || f.Next24Hours == nil || f.Next7Days == nil {
					t.Fatalf("expected all sections, got %+v", f)
				}
				if f.Current.Storm == nil || f.Current.Storm.Bearing != 100 {
					t.Errorf("Storm = %+v", f.Current.Storm)
				}
				if got := f.Next24Hours.HighLow(); got != "70°/50°" {
					t.Errorf("HighLow() = %q, want %q", got, "70°/50°")
				}
			},
		},
		{
			name: "only currently",
			response: &darksky.ForecastAPIResponse{
				Currently: &darksky.DataPoint{Summary: "Rain", NearestStormDistance: float(0), NearestStormBearing: float(90)},
			},
			validate: func(t *testing.T, f *Forecast) {
				if f.Current == nil {
					t.Fatal("Current is nil")
				}
				if f.Current.Storm != nil {
					t.Errorf("storm at distance 0 should be dropped, got %+v", f.Current.Storm)
				}
				if f.NextHour != nil || f.Next24Hours != nil || f.Next7Days != nil {
					t.Errorf("unexpected sections: %+v", f)
				}
			},
		},
		{
			name: "high and low use the first 24 hours",
			response: &darksky.ForecastAPIResponse{
				Hourly: &darksky.DataBlock{
					Summary: "Warming.",
					Data: func() []darksky.DataPoint {
						data := make([]darksky.DataPoint, 48)
						for i := range data {
							data[i].ApparentTemperature = float64(40 + i)
						}
						return data
					}(),
				},
			},
			validate: func(t *testing.T, f *Forecast) {
				if f.Next24Hours.High != 63 || f.Next24Hours.Low != 40 {
					t.Errorf("High/Low = %v/%v, want 63/40", f.Next24Hours.High, f.Next24Hours.Low)
				}
			},
		},
		{
			name: "hourly without data has no range",
			response: &darksky.ForecastAPIResponse{
				Hourly: &darksky.DataBlock{Summary: "Quiet."},
			},
			validate: func(t *testing.T, f *Forecast) {
				if f.Next24Hours.HasRange {
					t.Error("HasRange = true, want false")
				}
				if got := f.Next24Hours.HighLow(); got != "" {
					t.Errorf("HighLow() = %q, want empty", got)
				}
			},
		},
		{
			name: "daily only is unavailable",
			response: &darksky.ForecastAPIResponse{
				Daily: &darksky.DataBlock{Summary: "Rain all week."},
			},
			wantErr: ErrForecastUnavailable,
		},
		{
			name:     "empty response is unavailable",
			response: &darksky.ForecastAPIResponse{},
			wantErr:  ErrForecastUnavailable,
		},
		{
			name:        "provider error",
			providerErr: errors.New("timeout"),
			errContains: "failed to get forecast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockForecastProvider{response: tt.response, err: tt.providerErr}
			service := NewWeatherServiceWithProvider(provider, discardLogger())

			got, err := service.GetForecast(context.Background(), testPlace)

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatal("GetForecast() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("GetForecast() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetForecast() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetForecast() unexpected error = %v", err)
			}
			tt.validate(t, got)
		})
	}
}
