package geo

import (
	"context"
	"fmt"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
)

// StaticLocator reports a fixed position configured by the operator.
// The terminal client has no device sensors, so this stands in for browser geolocation.
type StaticLocator struct {
	lat, lon float64
	set      bool
}

// NewStaticLocator returns a locator for the given position. Out-of-range
// coordinates produce a locator that always denies.
func NewStaticLocator(lat, lon float64) *StaticLocator {
	valid := lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
	return &StaticLocator{lat: lat, lon: lon, set: valid}
}

// Locate implements dashboard.Locator.
func (l *StaticLocator) Locate(ctx context.Context) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", dashboard.ErrGeolocationDenied, err)
	}
	if l == nil || !l.set {
		return 0, 0, dashboard.ErrGeolocationDenied
	}
	return l.lat, l.lon, nil
}

var _ dashboard.Locator = (*StaticLocator)(nil)
