package openweather

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultGeoBaseURL     = "http://api.openweathermap.org"
	DefaultWeatherBaseURL = "https://api.openweathermap.org"
	DefaultTimeout        = 10 * time.Second
)

// Client implements the Geocoder and WeatherProvider ports using OpenWeather.
//
// Every lookup is a single GET with no retries; the only resilience is the
// HTTP client timeout and the caller's context.
//
// The client is safe for concurrent use.
type Client struct {
	session        *http.Client
	apiKey         string
	geoBaseURL     string
	weatherBaseURL string
}

type Options struct {
	GeoBaseURL     string
	WeatherBaseURL string
	Timeout        time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

func NewClient(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openweather api key is empty")
	}

	session := opts.HTTPClient
	if session == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		session = &http.Client{Timeout: timeout}
	}

	client := &Client{
		session:        session,
		apiKey:         apiKey,
		geoBaseURL:     baseURLOr(opts.GeoBaseURL, DefaultGeoBaseURL),
		weatherBaseURL: baseURLOr(opts.WeatherBaseURL, DefaultWeatherBaseURL),
	}

	return client, nil
}

func baseURLOr(u, fallback string) string {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		return fallback
	}
	return u
}
