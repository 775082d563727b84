package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/internal/infra/config"
)

func TestProvideWeatherConfigReadsProvider(t *testing.T) {
	cfg := &config.Config{Weather: config.WeatherConfig{Provider: "openweathermap"}}
	require.Equal(t, "openweathermap", provideWeatherConfig(cfg).Provider)
}

func TestProvideViewConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Weather:   config.WeatherConfig{IconBaseURL: "https://icons.test/wn"},
		Dashboard: config.DashboardConfig{DefaultUnit: "fahrenheit", TimeZone: "UTC"},
	}

	view := provideViewConfig(cfg, logger)
	require.Equal(t, forecast.Fahrenheit, view.DefaultUnit)
	require.Equal(t, "https://icons.test/wn", view.IconBaseURL)
	require.Equal(t, time.UTC, view.Zone)

	cfg.Dashboard.DefaultUnit = "kelvin"
	cfg.Dashboard.TimeZone = ""
	view = provideViewConfig(cfg, logger)
	require.Equal(t, forecast.Celsius, view.DefaultUnit)
	require.Nil(t, view.Zone)
}
