package domain

import "strconv"

// Immutable geographic coordinates (latitude, longitude) resolved from a city name.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return latitude and longitude formatted as query values for external API calls.
func (c Coordinates) QueryValues() (lat string, lon string) {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64), strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
