package dto

type WeatherResponse struct {
	Description string `json:"Description"`
	Icon        string `json:"Icon"`
	Temperature string `json:"Temperature"`
}

// Data rendered into the HTML views.
type FormView struct {
	City    string
	Unit    string
	Message string
}
