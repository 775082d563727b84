package weather

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	errNoLocation   = errors.New("either city or lat and lon are required")
	errPartialCoord = errors.New("lat and lon must be supplied together")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type coordinates struct {
	Lat float64 `validate:"min=-90,max=90"`
	Lon float64 `validate:"min=-180,max=180"`
}

// Resolve validates q and reduces it to a single location form.
// A non-blank city wins over coordinates; coordinates need both halves.
func Resolve(q Query) (Location, error) {
	if city := strings.TrimSpace(q.City); city != "" {
		return Location{City: city}, nil
	}

	lat, lon := strings.TrimSpace(q.Lat), strings.TrimSpace(q.Lon)
	switch {
	case lat == "" && lon == "":
		return Location{}, errNoLocation
	case lat == "" || lon == "":
		return Location{}, errPartialCoord
	}

	var (
		c   coordinates
		err error
	)
	if c.Lat, err = parseCoord("lat", lat); err != nil {
		return Location{}, err
	}
	if c.Lon, err = parseCoord("lon", lon); err != nil {
		return Location{}, err
	}
	if err := validate.Struct(c); err != nil {
		return Location{}, err
	}
	return Location{Lat: c.Lat, Lon: c.Lon, ByCoords: true}, nil
}

// parseCoord rejects NaN and infinities, which slip past range tags.
func parseCoord(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q is not a finite number", name, raw)
	}
	return v, nil
}
