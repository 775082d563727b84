package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/pkg/util"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http" envconfig:"HTTP"`
	Weather   WeatherConfig   `yaml:"weather" envconfig:"WEATHER"`
	Dashboard DashboardConfig `yaml:"dashboard" envconfig:"DASHBOARD"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string        `yaml:"address" envconfig:"ADDRESS" validate:"required"`
	ReadTimeout     time.Duration `yaml:"readTimeout" envconfig:"READ_TIMEOUT" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" envconfig:"WRITE_TIMEOUT" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gte=0"`
	AllowedOrigins  []string      `yaml:"allowedOrigins" envconfig:"ALLOWED_ORIGINS"`
	CORSMaxAge      time.Duration `yaml:"corsMaxAge" envconfig:"CORS_MAX_AGE" validate:"gte=0"`
}

// WeatherConfig points the gateway at the upstream provider.
type WeatherConfig struct {
	Provider    string        `yaml:"provider" envconfig:"PROVIDER" validate:"oneof=openweathermap"`
	APIKey      string        `yaml:"apiKey" envconfig:"API_KEY"`
	BaseURL     string        `yaml:"baseUrl" envconfig:"BASE_URL" validate:"required,url"`
	IconBaseURL string        `yaml:"iconBaseUrl" envconfig:"ICON_BASE_URL" validate:"omitempty,url"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gte=0"`
}

// DashboardConfig drives the rendered view and the terminal client.
type DashboardConfig struct {
	DefaultCity string        `yaml:"defaultCity" envconfig:"DEFAULT_CITY" validate:"required"`
	DefaultUnit string        `yaml:"defaultUnit" envconfig:"DEFAULT_UNIT" validate:"oneof=celsius fahrenheit"`
	TimeZone    string        `yaml:"timeZone" envconfig:"TIME_ZONE"`
	GatewayURL  string        `yaml:"gatewayUrl" envconfig:"GATEWAY_URL" validate:"required,url"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gte=0"`
}

// Load reads configuration from .env, a YAML file and environment variables, in that order.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		return nil, errors.New("invalid config: weather.apiKey cannot be empty")
	}
	return cfg, nil
}

// LoadClient is Load for processes that only talk to the gateway and never hold the upstream key.
func LoadClient() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// applyEnvOverrides only touches fields whose variable is set, e.g. WEATHER_API_KEY or HTTP_ADDRESS.
func applyEnvOverrides(cfg *Config) error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSMaxAge:      10 * time.Minute,
		},
		Weather: WeatherConfig{
			Provider:    "openweathermap",
			BaseURL:     "https://api.openweathermap.org/data/2.5",
			IconBaseURL: "https://openweathermap.org/img/wn",
			Timeout:     10 * time.Second,
		},
		Dashboard: DashboardConfig{
			DefaultCity: "London",
			DefaultUnit: string(forecast.Celsius),
			GatewayURL:  "http://localhost:8080",
			Timeout:     15 * time.Second,
		},
	}
}

var validate = validator.New()

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := util.LoadZone(c.Dashboard.TimeZone); c.Dashboard.TimeZone != "" && err != nil {
		return fmt.Errorf("dashboard.timeZone: %w", err)
	}
	return nil
}

// Zone returns the configured dashboard zone, or nil to follow the forecast city's offset.
func (c DashboardConfig) Zone() *time.Location {
	if c.TimeZone == "" {
		return nil
	}
	loc, err := util.LoadZone(c.TimeZone)
	if err != nil {
		return nil
	}
	return loc
}
