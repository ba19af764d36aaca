package domain

// A single weather condition entry as reported by the weather service.
type WeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Raw current-weather data for a location.
// Shape is not validated on decode; SurfaceWeather checks that at least one
// condition and a Kelvin temperature are present.
type WeatherPayload struct {
	Conditions []WeatherCondition `json:"weather"`
	Main       struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// User-facing weather summary for a single request.
type SurfacedResult struct {
	Description string
	Icon        string
	Temperature string
}
