package ports

import (
	"context"
	"weather-lookup-service/internal/domain"
)

// Contract for retrieving current weather conditions at a location.
type WeatherProvider interface {
	// Return the raw weather payload for the given coordinates.
	CurrentWeather(ctx context.Context, coords domain.Coordinates) (*domain.WeatherPayload, error)
}
