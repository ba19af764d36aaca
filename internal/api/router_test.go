package api

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"weather-lookup-service/internal/adapters/openweather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream serves both OpenWeather endpoints. Geocode answers come from
// geo keyed by city; every weather request gets weatherBody.
func fakeUpstream(t *testing.T, geo map[string]string, weatherBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		body, ok := geo[r.URL.Query().Get("q")]
		if !ok {
			body = `[]`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(weatherBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, upstream *httptest.Server, unit string) http.Handler {
	t.Helper()

	client, err := openweather.NewClient("test-key", openweather.Options{
		GeoBaseURL:     upstream.URL,
		WeatherBaseURL: upstream.URL,
	})
	require.NoError(t, err)

	return NewRouter(client, client, unit)
}

func postForm(h http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const clearSkyBody = `{"weather":[{"description":"clear sky","icon":"01d"}],"main":{"temp":300}}`

func TestLookupSurfacesWeather(t *testing.T) {
	upstream := fakeUpstream(t, map[string]string{"London": `[{"lat":51.5,"lon":-0.1}]`}, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := postForm(router, url.Values{"nm": {"London"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"Description": "clear sky",
		"Icon":        "01d",
		"Temperature": "26.85 C",
	}, got)
}

func TestLookupUnitOverride(t *testing.T) {
	upstream := fakeUpstream(t, map[string]string{"London": `[{"lat":51.5,"lon":-0.1}]`}, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := postForm(router, url.Values{"nm": {"London"}, "unit": {"Fahrenheit"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Temperature":"80.33 F"`)
}

func TestLookupInvalidCityRendersInvalidInputView(t *testing.T) {
	upstream := fakeUpstream(t, nil, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := postForm(router, url.Values{"nm": {"Nowhereville"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Invalid input")
	assert.Contains(t, rec.Body.String(), "Nowhereville")
}

func TestLookupMissingCityFieldRendersInvalidInputView(t *testing.T) {
	upstream := fakeUpstream(t, nil, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := postForm(router, url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid input")
}

func TestLookupInvalidAPIKeyRendersBadGateway(t *testing.T) {
	upstream := fakeUpstream(t, map[string]string{"Springfield": `[{"lat":1,"lon":2},{"lat":3,"lon":4}]`}, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := postForm(router, url.Values{"nm": {"Springfield"}})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weather unavailable")
}

func TestLookupMalformedWeatherRendersBadGateway(t *testing.T) {
	upstream := fakeUpstream(t, map[string]string{"London": `[{"lat":51.5,"lon":-0.1}]`}, `{"weather":[],"main":{"temp":300}}`)
	router := newTestRouter(t, upstream, "Celsius")

	rec := postForm(router, url.Values{"nm": {"London"}})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestFormView(t *testing.T) {
	upstream := fakeUpstream(t, nil, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="nm"`)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRootRejectsOtherMethods(t *testing.T) {
	upstream := fakeUpstream(t, nil, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	upstream := fakeUpstream(t, nil, clearSkyBody)
	router := newTestRouter(t, upstream, "Celsius")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLookupTransportFailureRendersBadGatewayWithoutLeakingKey(t *testing.T) {
	var logs bytes.Buffer
	prevOut := log.Writer()
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(prevOut) })

	upstream := httptest.NewServer(http.NotFoundHandler())
	upstream.Close()

	client, err := openweather.NewClient("secret-key-123", openweather.Options{
		GeoBaseURL:     upstream.URL,
		WeatherBaseURL: upstream.URL,
	})
	require.NoError(t, err)
	router := NewRouter(client, client, "Celsius")

	rec := postForm(router, url.Values{"nm": {"London"}})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weather unavailable")
	assert.Contains(t, logs.String(), "upstream lookup failed")
	assert.NotContains(t, logs.String(), "secret-key-123")
	assert.NotContains(t, rec.Body.String(), "secret-key-123")
}
