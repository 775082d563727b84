package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/internal/domain/weather"
	"github.com/yanqian/weather-dashboard/internal/infra/config"
	apperrors "github.com/yanqian/weather-dashboard/pkg/errors"
)

const (
	currentDoc  = `{"name":"London","dt":1719824400,"main":{"temp":21.4,"feels_like":20.6,"humidity":60,"pressure":1015},"wind":{"speed":5},"weather":[{"icon":"01d","description":"clear sky"}],"sys":{"country":"GB"}}`
	forecastDoc = `{"list":[{"dt":1719824400,"main":{"temp":21.4},"weather":[{"icon":"01d","description":"clear sky"}]}],"city":{"name":"London","country":"GB","timezone":0}}`
)

func TestRouter_WeatherByCity(t *testing.T) {
	svc := &stubWeather{
		fetchFn: func(ctx context.Context, q weather.Query) (weather.Payload, error) {
			require.Equal(t, "London", q.City)
			require.Empty(t, q.Lat)
			return weather.Payload{Current: json.RawMessage(currentDoc), Forecast: json.RawMessage(forecastDoc)}, nil
		},
	}

	recorder := performRequest("/weather?city=London", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.JSONEq(t, currentDoc, string(got["current"]))
	require.JSONEq(t, forecastDoc, string(got["forecast"]))
}

func TestRouter_WeatherByCoords(t *testing.T) {
	svc := &stubWeather{
		fetchFn: func(ctx context.Context, q weather.Query) (weather.Payload, error) {
			require.Equal(t, "51.5", q.Lat)
			require.Equal(t, "-0.12", q.Lon)
			return weather.Payload{Current: json.RawMessage(`{}`), Forecast: json.RawMessage(`{}`)}, nil
		},
	}

	recorder := performRequest("/weather?lat=51.5&lon=-0.12", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_WeatherErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "missing params", err: apperrors.Wrap(weather.CodeInvalidQuery, weather.MsgMissingParams, nil), status: http.StatusBadRequest, message: weather.MsgMissingParams},
		{name: "upstream miss", err: apperrors.Wrap(weather.CodeNotFound, weather.MsgNotFound, nil), status: http.StatusBadRequest, message: weather.MsgNotFound},
		{name: "upstream failure", err: apperrors.Wrap(weather.CodeUpstream, weather.MsgServerError, nil), status: http.StatusInternalServerError, message: weather.MsgServerError},
		{name: "unexpected", err: context.DeadlineExceeded, status: http.StatusInternalServerError, message: weather.MsgServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubWeather{fetchFn: func(context.Context, weather.Query) (weather.Payload, error) {
				return weather.Payload{}, tc.err
			}}
			recorder := performRequest("/weather", newRouterUnderTest(t, svc))
			require.Equal(t, tc.status, recorder.Code)
			require.Equal(t, tc.message, decodeErrorBody(t, recorder.Body.Bytes())["error"])
		})
	}
}

func TestRouter_WeatherRejectsUnusableLocationWithoutUpstreamCalls(t *testing.T) {
	paths := []string{
		"/weather?lat=&lon=",
		"/weather?city=&lat=&lon=",
		"/weather?city=%20%20",
		"/weather?lat=north&lon=1",
		"/weather?lat=NaN&lon=0",
		"/weather?lat=0&lon=Inf",
		"/weather?lat=10",
		"/api/v1/weather?lat=&lon=",
		"/api/v1/dashboard?lat=&lon=&unit=f",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			upstream := &countingUpstream{}
			svc := weather.NewService(weather.Config{Provider: "test"}, upstream, newTestLogger())

			recorder := performRequest(path, newRouterUnderTest(t, svc))
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decodeErrorBody(t, recorder.Body.Bytes())
			require.Equal(t, weather.MsgMissingParams, body["error"])
			require.Equal(t, weather.CodeInvalidQuery, body["code"])
			require.Zero(t, upstream.calls.Load())
		})
	}
}

func TestRouter_WeatherCoordinatesReachUpstream(t *testing.T) {
	upstream := &countingUpstream{}
	svc := weather.NewService(weather.Config{Provider: "test"}, upstream, newTestLogger())

	recorder := performRequest("/weather?lat=0&lon=0", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.EqualValues(t, 2, upstream.calls.Load())
}

func TestRouter_DashboardView(t *testing.T) {
	svc := &stubWeather{fetchFn: func(context.Context, weather.Query) (weather.Payload, error) {
		return weather.Payload{Current: json.RawMessage(currentDoc), Forecast: json.RawMessage(forecastDoc)}, nil
	}}

	recorder := performRequest("/api/v1/dashboard?city=London&unit=f", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var view dashboard.View
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	require.Equal(t, forecast.Fahrenheit, view.Unit)
	require.NotNil(t, view.Current)
	require.Equal(t, "London, GB", view.Current.Location)
	require.Equal(t, 70, view.Current.Temperature)
	require.Equal(t, "11 mph", view.Current.Wind)
	require.Len(t, view.Daily, 1)
	require.Len(t, view.Hourly, 1)
}

func TestRouter_DashboardRejectsUnknownUnit(t *testing.T) {
	svc := &stubWeather{}
	recorder := performRequest("/api/v1/dashboard?city=London&unit=kelvin", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Zero(t, svc.calls)
}

func TestRouter_Health(t *testing.T) {
	recorder := performRequest("/healthz", newRouterUnderTest(t, &stubWeather{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/weather", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	rec := httptest.NewRecorder()
	newRouterUnderTest(t, &stubWeather{}).Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func performRequest(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc weather.Service) *http.Server {
	t.Helper()
	logger := newTestLogger()
	handler := NewHandler(svc, ViewConfig{Zone: time.UTC, DefaultUnit: forecast.Celsius}, logger)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"https://dash.example.com"},
		},
	}
	return NewRouter(cfg, handler, logger)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubWeather struct {
	fetchFn func(ctx context.Context, q weather.Query) (weather.Payload, error)
	calls   int
}

func (s *stubWeather) Fetch(ctx context.Context, q weather.Query) (weather.Payload, error) {
	s.calls++
	if s.fetchFn != nil {
		return s.fetchFn(ctx, q)
	}
	return weather.Payload{}, apperrors.Wrap(weather.CodeInvalidQuery, weather.MsgMissingParams, nil)
}

type countingUpstream struct {
	calls atomic.Int32
}

func (u *countingUpstream) Fetch(context.Context, weather.Endpoint, weather.Location) (json.RawMessage, error) {
	u.calls.Add(1)
	return json.RawMessage(`{}`), nil
}

func decodeErrorBody(t *testing.T, body []byte) map[string]string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}
