package openweather

import (
	"context"
	"fmt"
	"weather-lookup-service/internal/domain"
)

type MockEntry struct {
	City    string
	Coords  domain.Coordinates
	Payload *domain.WeatherPayload
	// Err is returned from CurrentWeather instead of Payload when set.
	Err error
}

// MockProvider serves canned geocode and weather lookups without network access.
// Unknown cities resolve to domain.ErrInvalidCity.
type MockProvider struct {
	coords  map[string]domain.Coordinates
	entries map[domain.Coordinates]MockEntry
}

func NewMockProvider(entries []MockEntry) *MockProvider {
	p := &MockProvider{
		coords:  make(map[string]domain.Coordinates, len(entries)),
		entries: make(map[domain.Coordinates]MockEntry, len(entries)),
	}
	for _, e := range entries {
		p.coords[e.City] = e.Coords
		p.entries[e.Coords] = e
	}
	return p
}

func (p *MockProvider) Geocode(ctx context.Context, city string) (domain.Coordinates, error) {
	c, ok := p.coords[city]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("mock geocode %q: %w", city, domain.ErrInvalidCity)
	}

	return c, nil
}

func (p *MockProvider) CurrentWeather(ctx context.Context, coords domain.Coordinates) (*domain.WeatherPayload, error) {
	e, ok := p.entries[coords]
	if !ok {
		return nil, fmt.Errorf("mock weather: no payload for %+v", coords)
	}
	if e.Err != nil {
		return nil, e.Err
	}

	return e.Payload, nil
}
