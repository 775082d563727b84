package dashboard

import "github.com/yanqian/weather-dashboard/internal/domain/forecast"

// ActionKind keys the dispatch table.
type ActionKind string

const (
	KindSearch           ActionKind = "search"
	KindRequestLocation  ActionKind = "request_location"
	KindLocationResolved ActionKind = "location_resolved"
	KindLocationFailed   ActionKind = "location_failed"
	KindSwitchUnit       ActionKind = "switch_unit"
	KindWeatherLoaded    ActionKind = "weather_loaded"
	KindWeatherFailed    ActionKind = "weather_failed"
	KindDismissError     ActionKind = "dismiss_error"
)

// Action is a user intent or an effect result fed back into the reducer.
type Action interface {
	Kind() ActionKind
}

// Search looks up a city typed by the user.
type Search struct{ City string }

// RequestLocation asks for the device position.
type RequestLocation struct{}

// LocationResolved carries the device position.
type LocationResolved struct{ Lat, Lon float64 }

// LocationFailed reports that no position is available.
type LocationFailed struct{ Err error }

// SwitchUnit changes the display unit.
type SwitchUnit struct{ Unit forecast.Unit }

// WeatherLoaded carries a decoded gateway response.
type WeatherLoaded struct {
	Snapshot Snapshot
	ByCoords bool
}

// WeatherFailed reports a failed gateway request.
type WeatherFailed struct {
	Err      error
	ByCoords bool
}

// DismissError closes the error modal.
type DismissError struct{}

func (Search) Kind() ActionKind           { return KindSearch }
func (RequestLocation) Kind() ActionKind  { return KindRequestLocation }
func (LocationResolved) Kind() ActionKind { return KindLocationResolved }
func (LocationFailed) Kind() ActionKind   { return KindLocationFailed }
func (SwitchUnit) Kind() ActionKind       { return KindSwitchUnit }
func (WeatherLoaded) Kind() ActionKind    { return KindWeatherLoaded }
func (WeatherFailed) Kind() ActionKind    { return KindWeatherFailed }
func (DismissError) Kind() ActionKind     { return KindDismissError }

// Effect is work the reducer asks the session to perform.
type Effect interface {
	effect()
}

// FetchCity requests weather for a city name.
type FetchCity struct{ City string }

// FetchCoords requests weather for a coordinate pair.
type FetchCoords struct{ Lat, Lon float64 }

// LocateDevice asks the locator for the current position.
type LocateDevice struct{}

func (FetchCity) effect()    {}
func (FetchCoords) effect()  {}
func (LocateDevice) effect() {}
