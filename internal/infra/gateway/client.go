package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
	"github.com/yanqian/weather-dashboard/internal/domain/weather"
)

const defaultBaseURL = "http://localhost:8080"

// Client calls the weather proxy's GET /weather endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a proxy client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ByCity implements dashboard.Gateway.
func (c *Client) ByCity(ctx context.Context, city string) (weather.Payload, error) {
	params := url.Values{}
	params.Set("city", city)
	return c.get(ctx, params)
}

// ByCoords implements dashboard.Gateway.
func (c *Client) ByCoords(ctx context.Context, lat, lon float64) (weather.Payload, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params url.Values) (weather.Payload, error) {
	endpoint := fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Payload{}, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Payload{}, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Payload{}, fmt.Errorf("%w: status=%d body=%s", dashboard.ErrWeatherNotFound, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload weather.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Payload{}, fmt.Errorf("decode gateway response: %w", err)
	}
	return payload, nil
}

var _ dashboard.Gateway = (*Client)(nil)
