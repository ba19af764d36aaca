package openweather

import (
	"context"
	"fmt"
	"net/url"
	"weather-lookup-service/internal/domain"
	"weather-lookup-service/internal/platform/obs"
)

// CurrentWeather fetches current conditions from /data/2.5/weather.
// The payload is returned as decoded; callers validate its shape.
func (c *Client) CurrentWeather(
	ctx context.Context,
	coords domain.Coordinates,
) (_ *domain.WeatherPayload, err error) {
	defer obs.Time(ctx, "openweather.CurrentWeather")(&err)

	endpoint := c.weatherBaseURL + "/data/2.5/weather"

	lat, lon := coords.QueryValues()

	var payload domain.WeatherPayload
	if err := c.getJSON(ctx, endpoint, url.Values{"lat": {lat}, "lon": {lon}}, &payload); err != nil {
		return nil, fmt.Errorf("current weather lat=%s lon=%s: %w", lat, lon, err)
	}

	return &payload, nil
}
