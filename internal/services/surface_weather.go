package services

import (
	"context"
	"errors"
	"fmt"
	"weather-lookup-service/internal/domain"
	"weather-lookup-service/internal/ports"
)

type SurfaceWeatherRequest struct {
	City string
	// Unit is raw user or config input; unrecognized values fall back to Celsius.
	Unit string
}

// SurfaceWeather resolves a city to its current weather and formats it for display.
//
// The weather lookup depends on the geocode result, so the two upstream calls
// run strictly in sequence. Failures keep their domain error kind
// (ErrInvalidCity, ErrInvalidAPIKey, ErrMalformedPayload, ErrUpstream) so
// callers can decide which ones to recover from.
func SurfaceWeather(
	ctx context.Context,
	req SurfaceWeatherRequest,
	geocoder ports.Geocoder,
	provider ports.WeatherProvider,
) (*domain.SurfacedResult, error) {
	if geocoder == nil || provider == nil {
		return nil, errors.New("surface weather: geocoder and provider must be non-nil")
	}

	coords, err := geocoder.Geocode(ctx, req.City)
	if err != nil {
		return nil, fmt.Errorf("surface weather: resolve city: %w", err)
	}

	payload, err := provider.CurrentWeather(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("surface weather: fetch weather: %w", err)
	}

	return FormatWeather(payload, req.Unit)
}

// FormatWeather builds the surfaced result from a raw payload.
// It fails with domain.ErrMalformedPayload when the payload has no weather
// condition or no Kelvin temperature.
func FormatWeather(payload *domain.WeatherPayload, rawUnit string) (*domain.SurfacedResult, error) {
	if payload == nil || len(payload.Conditions) == 0 {
		return nil, fmt.Errorf("surface weather: no weather condition: %w", domain.ErrMalformedPayload)
	}
	if payload.Main.Temp == nil {
		return nil, fmt.Errorf("surface weather: no main.temp: %w", domain.ErrMalformedPayload)
	}

	condition := payload.Conditions[0]
	value, unit := domain.ConvertKelvin(*payload.Main.Temp, rawUnit)

	return &domain.SurfacedResult{
		Description: condition.Description,
		Icon:        condition.Icon,
		Temperature: domain.FormatTemperature(value, unit),
	}, nil
}
