package main

import (
	"log/slog"

	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/internal/domain/weather"
	"github.com/yanqian/weather-dashboard/internal/infra/config"
	"github.com/yanqian/weather-dashboard/internal/infra/weather/openweather"
	httpiface "github.com/yanqian/weather-dashboard/internal/interface/http"
)

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{Provider: cfg.Weather.Provider}
}

func provideUpstreamClient(cfg *config.Config) *openweather.Client {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)
}

func provideViewConfig(cfg *config.Config, logger *slog.Logger) httpiface.ViewConfig {
	unit, err := forecast.ParseUnit(cfg.Dashboard.DefaultUnit)
	if err != nil {
		logger.Warn("invalid default unit, using celsius", "unit", cfg.Dashboard.DefaultUnit)
		unit = forecast.Celsius
	}
	return httpiface.ViewConfig{
		Zone:        cfg.Dashboard.Zone(),
		IconBaseURL: cfg.Weather.IconBaseURL,
		DefaultUnit: unit,
	}
}
