package dashboard

import "errors"

var (
	// ErrWeatherNotFound is wrapped by gateways when the proxy rejects a lookup.
	ErrWeatherNotFound = errors.New("weather not found")
	// ErrGeolocationDenied means the position request was refused or failed.
	ErrGeolocationDenied = errors.New("geolocation denied")
	// ErrGeolocationUnsupported means no locator is available at all.
	ErrGeolocationUnsupported = errors.New("geolocation unsupported")
)

const (
	msgCityNotFound        = "City not found"
	msgLocationNotFound    = "Location weather not found"
	msgLocationDenied      = "Unable to retrieve your location. Please try again or search for a city."
	msgLocationUnsupported = "Geolocation is not supported by this client."
)

func weatherErrorMessage(err error, byCoords bool) string {
	if err == nil || errors.Is(err, ErrWeatherNotFound) {
		if byCoords {
			return msgLocationNotFound
		}
		return msgCityNotFound
	}
	return err.Error()
}

func locationErrorMessage(err error) string {
	if errors.Is(err, ErrGeolocationUnsupported) {
		return msgLocationUnsupported
	}
	return msgLocationDenied
}
