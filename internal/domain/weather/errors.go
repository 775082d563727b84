package weather

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the gateway.
const (
	CodeInvalidQuery = "invalid_query"
	CodeNotFound     = "weather_not_found"
	CodeUpstream     = "upstream_error"
)

// User facing messages returned with each code.
const (
	MsgMissingParams = "Missing required parameters."
	MsgNotFound      = "Weather data not found."
	MsgServerError   = "Server error."
)

// StatusError is returned by upstream clients when the provider answers with a non-success status.
type StatusError struct {
	Endpoint   Endpoint
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsStatusError reports whether err wraps a *StatusError.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}
