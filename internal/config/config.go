package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"weather-lookup-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide, read-only configuration built once at startup
// and passed explicitly to the components that need it.
type Config struct {
	APIKey          string        `yaml:"api_key"`
	TemperatureUnit string        `yaml:"temperature_unit"`
	Port            string        `yaml:"port"`
	LogFile         string        `yaml:"log_file"`
	GeoBaseURL      string        `yaml:"geo_base_url"`
	WeatherBaseURL  string        `yaml:"weather_base_url"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
}

func defaults() Config {
	return Config{
		TemperatureUnit: string(domain.Celsius),
		Port:            "5000",
		LogFile:         "record.log",
		GeoBaseURL:      "http://api.openweathermap.org",
		WeatherBaseURL:  "https://api.openweathermap.org",
		HTTPTimeout:     10 * time.Second,
	}
}

// Load builds a Config from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
// Call godotenv.Load before Load to pick up a .env file.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.APIKey = Get("OPENWEATHER_API_KEY", cfg.APIKey)
	cfg.TemperatureUnit = Get("TEMPERATURE_UNIT", cfg.TemperatureUnit)
	cfg.Port = Get("PORT", cfg.Port)
	cfg.LogFile = Get("LOG_FILE", cfg.LogFile)
	cfg.GeoBaseURL = Get("GEO_BASE_URL", cfg.GeoBaseURL)
	cfg.WeatherBaseURL = Get("WEATHER_BASE_URL", cfg.WeatherBaseURL)

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("load config: parse HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	return &cfg, nil
}

// Warnings lists settings that load fine but will not behave as written.
// Callers log them once the log sink is set up.
func (c *Config) Warnings() []string {
	var out []string
	if _, ok := domain.ParseUnit(c.TemperatureUnit); !ok {
		out = append(out, fmt.Sprintf("unrecognized temperature unit %q, using Celsius", c.TemperatureUnit))
	}
	return out
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("load config: parse yaml %q: %w", path, err)
	}

	return nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("OPENWEATHER_API_KEY is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

// Get returns the environment variable key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
