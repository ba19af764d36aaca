package ports

import (
	"context"
	"weather-lookup-service/internal/domain"
)

// Contract for resolving a place name to coordinates.
type Geocoder interface {
	// Return the coordinates of the best match for city.
	Geocode(ctx context.Context, city string) (domain.Coordinates, error)
}
