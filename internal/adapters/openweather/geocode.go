package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"weather-lookup-service/internal/domain"
	"weather-lookup-service/internal/platform/obs"
)

type geocodeMatch struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// Geocode resolves a city name using OpenWeather direct geocoding (/geo/1.0/direct).
//
// A response with two or more matches is treated as a rejected API key. The
// upstream API does not document this; it mirrors how the service has
// historically responded to bad keys and is kept alongside the explicit 401
// check.
func (c *Client) Geocode(ctx context.Context, city string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "openweather.Geocode")(&err)

	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: empty city name: %w", domain.ErrInvalidCity)
	}

	endpoint := c.geoBaseURL + "/geo/1.0/direct"

	var matches []geocodeMatch
	if err := c.getJSON(ctx, endpoint, url.Values{"q": {city}}, &matches); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", city, err)
	}

	if len(matches) >= 2 {
		return domain.Coordinates{}, fmt.Errorf(
			"geocode %q: got %d matches: %w",
			city, len(matches), domain.ErrInvalidAPIKey,
		)
	}

	if len(matches) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: no matches: %w", city, domain.ErrInvalidCity)
	}

	m := matches[0]
	if m.Lat == nil || m.Lon == nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: match without lat/lon: %w", city, domain.ErrMalformedPayload)
	}

	return domain.Coordinates{Lat: *m.Lat, Lon: *m.Lon}, nil
}
