package dashboard

import (
	"fmt"

	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/internal/domain/weather"
)

// State is the whole dashboard UI state. Transitions return a new value; a State is never mutated.
type State struct {
	City    string
	Unit    forecast.Unit
	Loading bool
	Err     string
	Data    *Snapshot
}

// Initial builds the state a fresh session starts from.
func Initial(city string, unit forecast.Unit) State {
	if !unit.Valid() {
		unit = forecast.Celsius
	}
	return State{City: city, Unit: unit}
}

// Snapshot holds the decoded upstream documents in source units (Celsius, m/s).
// Unit switches re-render from these values without another fetch.
type Snapshot struct {
	Current  forecast.Current
	Forecast forecast.Forecast
}

// NewSnapshot decodes a gateway payload.
func NewSnapshot(p weather.Payload) (Snapshot, error) {
	current, err := forecast.DecodeCurrent(p.Current)
	if err != nil {
		return Snapshot{}, fmt.Errorf("current conditions: %w", err)
	}
	fc, err := forecast.DecodeForecast(p.Forecast)
	if err != nil {
		return Snapshot{}, fmt.Errorf("forecast: %w", err)
	}
	return Snapshot{Current: current, Forecast: fc}, nil
}
