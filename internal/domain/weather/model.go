package weather

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Query is the caller supplied lookup as it arrives on the wire: a city name or a
// coordinate pair. Blank values count as absent.
type Query struct {
	City string `form:"city" json:"city,omitempty"`
	Lat  string `form:"lat" json:"lat,omitempty"`
	Lon  string `form:"lon" json:"lon,omitempty"`
}

// Location is a validated query reduced to the single form sent upstream.
type Location struct {
	City string
	Lat  float64
	Lon  float64
	// ByCoords is set when the location was resolved from a coordinate pair.
	ByCoords bool
}

// String renders the location for logs.
func (l Location) String() string {
	if l.ByCoords {
		return fmt.Sprintf("%s,%s", formatCoord(l.Lat), formatCoord(l.Lon))
	}
	return l.City
}

// Endpoint selects one of the two upstream resources.
type Endpoint string

const (
	EndpointCurrent  Endpoint = "weather"
	EndpointForecast Endpoint = "forecast"
)

// Payload is the combined upstream response returned to gateway callers verbatim.
type Payload struct {
	Current  json.RawMessage `json:"current"`
	Forecast json.RawMessage `json:"forecast"`
}

// Config wires runtime settings for the gateway.
type Config struct {
	// Provider names the upstream in logs.
	Provider string
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
