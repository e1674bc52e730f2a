package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"weather-skill/internal/config"
	"weather-skill/internal/providers/darksky"
	"weather-skill/internal/types"
)

// ErrForecastUnavailable is returned when the provider has no current, next hour or hourly data
var ErrForecastUnavailable = errors.New("forecast unavailable")

type ForecastProvider interface {
	// GetForecast fetches the weather forecast for the given coordinates
	GetForecast(ctx context.Context, coords types.Coords) (*darksky.ForecastAPIResponse, error)
}

type Service interface {
	GetForecast(ctx context.Context, place types.Place) (*Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(
		darksky.NewClient(cfg.DarkSky.BaseURL, cfg.DarkSky.APIKey, httpClient, logger),
		logger,
	)
}

func NewWeatherServiceWithProvider(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetForecast(ctx context.Context, place types.Place) (*Forecast, error) {
	apiResponse, err := s.forecastProvider.GetForecast(ctx, place.Coordinates)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", place.Coordinates.Latitude,
			"longitude", place.Coordinates.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	if apiResponse == nil || (apiResponse.Currently == nil && apiResponse.Minutely == nil && apiResponse.Hourly == nil) {
		s.logger.Warn("forecast response has no usable sections",
			"latitude", place.Coordinates.Latitude,
			"longitude", place.Coordinates.Longitude,
		)
		return nil, ErrForecastUnavailable
	}

	return mapForecastAPIResponseToForecast(place, apiResponse), nil
}

func mapForecastAPIResponseToForecast(place types.Place, apiResponse *darksky.ForecastAPIResponse) *Forecast {
	forecast := &Forecast{
		Place:    place,
		Timezone: apiResponse.Timezone,
	}

	if now := apiResponse.Currently; now != nil {
		forecast.Current = &CurrentConditions{
			Summary:             now.Summary,
			Icon:                now.Icon,
			Temperature:         types.Degrees(now.Temperature),
			ApparentTemperature: types.Degrees(now.ApparentTemperature),
			DewPoint:            types.Degrees(now.DewPoint),
			Humidity:            now.Humidity,
		}
		if now.NearestStormDistance != nil && *now.NearestStormDistance > 0 {
			storm := &Storm{DistanceMiles: *now.NearestStormDistance}
			if now.NearestStormBearing != nil {
				storm.Bearing = *now.NearestStormBearing
			}
			forecast.Current.Storm = storm
		}
	}

	if apiResponse.Minutely != nil {
		forecast.NextHour = &Outlook{Summary: apiResponse.Minutely.Summary}
	}

	if hourly := apiResponse.Hourly; hourly != nil {
		day := &DayOutlook{Summary: hourly.Summary}
		data := hourly.Data
		if len(data) > hourlyWindow {
			data = data[:hourlyWindow]
		}
		if len(data) > 0 {
			apparent := make([]float64, len(data))
			for i, d := range data {
				apparent[i] = d.ApparentTemperature
			}
			day.HasRange = true
			day.High = types.Degrees(maxFloat(apparent))
			day.Low = types.Degrees(minFloat(apparent))
		}
		forecast.Next24Hours = day
	}

	if apiResponse.Daily != nil {
		forecast.Next7Days = &Outlook{Summary: apiResponse.Daily.Summary}
	}

	return forecast
}

func minFloat(value []float64) float64 {
	if len(value) == 0 {
		return 0
	}

	m := value[0]
	for _, v := range value[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxFloat(value []float64) float64 {
	if len(value) == 0 {
		return 0
	}

	m := value[0]
	for _, v := range value[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
