package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
)

func TestStaticLocator(t *testing.T) {
	lat, lon, err := NewStaticLocator(59.91, 10.75).Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 59.91, lat)
	require.Equal(t, 10.75, lon)
}

func TestStaticLocatorDenies(t *testing.T) {
	_, _, err := NewStaticLocator(95, 0).Locate(context.Background())
	require.True(t, errors.Is(err, dashboard.ErrGeolocationDenied))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = NewStaticLocator(1, 1).Locate(ctx)
	require.True(t, errors.Is(err, dashboard.ErrGeolocationDenied))
}
