package api

import (
	"net/http"
	"weather-lookup-service/internal/api/handlers"
	"weather-lookup-service/internal/ports"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, provider ports.WeatherProvider, defaultUnit string) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	weatherHandler := &handlers.WeatherHandler{
		Geocoder:    geocoder,
		Provider:    provider,
		DefaultUnit: defaultUnit,
	}

	r.MethodNotAllowed(handlers.MethodNotAllowed(http.MethodGet, http.MethodPost))

	r.HandleFunc("/health", handlers.Health)
	r.Get("/", weatherHandler.Form)
	r.Post("/", weatherHandler.Lookup)

	return r
}
