package forecast

import (
	"fmt"
	"math"
	"strings"
)

// Unit is the display unit selected on the dashboard.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// ParseUnit accepts the long names and the c/f shorthands; blank input means Celsius.
func ParseUnit(raw string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "c", "celsius", "metric":
		return Celsius, nil
	case "f", "fahrenheit", "imperial":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown unit %q", raw)
	}
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// Temperature converts a Celsius source value into the displayed integer.
//
// Fahrenheit is derived from the already rounded Celsius value, so 21.4 °C shows
// as 21 °C / 70 °F rather than 71 °F. Displayed values depend on this chaining;
// do not switch to the raw value without updating every consumer.
func Temperature(celsius float64, unit Unit) int {
	c := jsRound(celsius)
	if unit == Fahrenheit {
		return int(jsRound(c*9/5 + 32))
	}
	return int(c)
}

// WindSpeed converts a m/s source value into the displayed speed and its unit label.
// Miles per hour are derived from the already rounded km/h value.
func WindSpeed(metersPerSecond float64, unit Unit) (int, string) {
	kmh := jsRound(metersPerSecond * 3.6)
	if unit == Fahrenheit {
		return int(jsRound(kmh / 1.609)), "mph"
	}
	return int(kmh), "km/h"
}

// jsRound rounds half toward positive infinity, matching the browser's Math.round.
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}
