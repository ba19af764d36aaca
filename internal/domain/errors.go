package domain

import "errors"

var (
	// The geocoder returned no match for the requested city.
	ErrInvalidCity = errors.New("invalid city name")

	// The upstream service rejected the API key, either with an explicit
	// 401 or through the legacy "more than one match" response shape.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// An upstream response was missing fields needed to surface a result.
	ErrMalformedPayload = errors.New("malformed upstream payload")

	// An upstream service answered with a non-success status.
	ErrUpstream = errors.New("upstream service error")
)
