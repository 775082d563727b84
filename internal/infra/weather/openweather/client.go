package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/weather-dashboard/internal/domain/weather"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultUnits   = "metric"
	maxBodyBytes   = 4 << 20
)

// Client fetches raw documents from the OpenWeatherMap 2.5 API.
type Client struct {
	apiKey     string
	baseURL    string
	units      string
	httpClient *http.Client
}

// NewClient builds an API client. A zero timeout leaves the transport default in place.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(base, "/"),
		units:      defaultUnits,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL builds the upstream address for an endpoint and location.
func (c *Client) URL(endpoint weather.Endpoint, loc weather.Location) string {
	params := url.Values{}
	if loc.ByCoords {
		params.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	} else {
		params.Set("q", loc.City)
	}
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	return fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
}

// Fetch performs one GET and returns the body untouched when the provider answers 2xx.
func (c *Client) Fetch(ctx context.Context, endpoint weather.Endpoint, loc weather.Location) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(endpoint, loc), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &weather.StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(payload)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode %s response: invalid json", endpoint)
	}
	return json.RawMessage(body), nil
}

// redact strips the API key from transport errors, which embed the request URL.
func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, secret, "REDACTED"))
}

var _ weather.UpstreamClient = (*Client)(nil)
