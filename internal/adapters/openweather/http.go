package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"weather-lookup-service/internal/domain"
)

// StatusError reports a non-success response from OpenWeather.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Unwrap classifies the status: 401 is a rejected key, everything else is a
// generic upstream failure.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return domain.ErrInvalidAPIKey
	}
	return domain.ErrUpstream
}

func (c *Client) newRequest(
	ctx context.Context,
	endpoint string,
	query url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("appid", c.apiKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		// *url.Error renders the full request URL, appid included.
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = redactAPIKey(ue.URL)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// redactAPIKey masks the appid query value so request URLs are safe to log.
func redactAPIKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}

	q := u.Query()
	if q.Has("appid") {
		q.Set("appid", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// getJSON issues a single GET and decodes the JSON body into out.
// Undecodable bodies are reported as domain.ErrMalformedPayload.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, endpoint, query)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w: %v", domain.ErrMalformedPayload, err)
	}

	return nil
}
