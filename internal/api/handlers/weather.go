package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"weather-lookup-service/internal/api/dto"
	"weather-lookup-service/internal/api/views"
	"weather-lookup-service/internal/domain"
	"weather-lookup-service/internal/platform/obs"
	"weather-lookup-service/internal/ports"
	"weather-lookup-service/internal/services"
)

const maxFormBytes = 1 << 16

type WeatherHandler struct {
	Geocoder    ports.Geocoder
	Provider    ports.WeatherProvider
	DefaultUnit string
}

// Form renders the city input form.
func (h *WeatherHandler) Form(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, http.StatusOK, views.Input, dto.FormView{})
}

// Lookup handles a form submission: field "nm" names the city and the
// optional field "unit" overrides the configured temperature unit.
//
// An unknown city is the expected user error and renders the invalid-input
// view. Key, payload and upstream failures render the error view with 502;
// anything else is a 500.
func (h *WeatherHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		views.Render(w, r, http.StatusBadRequest, views.Error, dto.FormView{Message: "The form could not be read."})
		return
	}

	city := strings.TrimSpace(r.PostFormValue("nm"))
	unit := strings.TrimSpace(r.PostFormValue("unit"))
	if unit == "" {
		unit = h.DefaultUnit
	}

	res, err := services.SurfaceWeather(
		r.Context(),
		services.SurfaceWeatherRequest{City: city, Unit: unit},
		h.Geocoder,
		h.Provider,
	)
	if err != nil {
		reqID := obs.RequestID(r.Context())

		switch {
		case errors.Is(err, domain.ErrInvalidCity):
			log.Printf("level=info req_id=%s msg=\"invalid city\" city=%q", reqID, city)
			views.Render(w, r, http.StatusOK, views.InvalidInput, dto.FormView{City: city})
		case errors.Is(err, domain.ErrInvalidAPIKey),
			errors.Is(err, domain.ErrMalformedPayload),
			errors.Is(err, domain.ErrUpstream):
			log.Printf("level=error req_id=%s msg=\"upstream lookup failed\" city=%q err=%v", reqID, city, err)
			views.Render(w, r, http.StatusBadGateway, views.Error, dto.FormView{
				City:    city,
				Message: "The weather service is unavailable right now. Please try again later.",
			})
		default:
			log.Printf("level=error req_id=%s msg=\"weather lookup failed\" city=%q err=%v", reqID, city, err)
			views.Render(w, r, http.StatusInternalServerError, views.Error, dto.FormView{
				City:    city,
				Message: "Something went wrong while looking up the weather.",
			})
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.WeatherResponse{
		Description: res.Description,
		Icon:        res.Icon,
		Temperature: res.Temperature,
	})
}
