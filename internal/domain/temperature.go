package domain

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "Celsius"
	Fahrenheit TemperatureUnit = "Fahrenheit"
)

const absoluteZeroCelsius = 273.15

// legacyFahrenheit is the spelling older configs and clients still send.
const legacyFahrenheit = "Farenheit"

// Initial returns the single-letter suffix used when rendering a temperature.
func (u TemperatureUnit) Initial() string {
	if u == "" {
		return Celsius.Initial()
	}
	return string(u)[:1]
}

// NormalizeUnit strips every non-letter from raw and title-cases the rest,
// so " fahrenheit!" and "FAHRENHEIT" both become "Fahrenheit".
func NormalizeUnit(raw string) string {
	letters := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, raw)

	return cases.Title(language.Und).String(letters)
}

// ParseUnit maps raw user input to a known unit.
// The boolean is false when the input was not recognized and Celsius was assumed.
func ParseUnit(raw string) (TemperatureUnit, bool) {
	switch NormalizeUnit(raw) {
	case string(Celsius):
		return Celsius, true
	case string(Fahrenheit), legacyFahrenheit:
		return Fahrenheit, true
	default:
		return Celsius, false
	}
}

// ConvertKelvin converts a Kelvin reading to the unit named by rawUnit,
// rounded to two decimals. Unrecognized units fall back to Celsius.
func ConvertKelvin(kelvin float64, rawUnit string) (float64, TemperatureUnit) {
	unit, _ := ParseUnit(rawUnit)

	value := kelvin - absoluteZeroCelsius
	if unit == Fahrenheit {
		value = value*9/5 + 32
	}

	return roundTo2(value), unit
}

// FormatTemperature renders a converted value as "<value> <unit initial>".
// Integral values keep one decimal place ("27.0 C").
func FormatTemperature(value float64, unit TemperatureUnit) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + " " + unit.Initial()
}

func roundTo2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// Avoid rendering "-0.0".
		return 0
	}
	return r
}
