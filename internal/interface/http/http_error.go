package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-dashboard/internal/domain/weather"
	apperrors "github.com/yanqian/weather-dashboard/pkg/errors"
)

const codeInvalidUnit = "invalid_unit"

// statusByCode is the gateway's error contract: client mistakes and upstream
// misses are 400, everything else is 500.
var statusByCode = map[string]int{
	weather.CodeInvalidQuery: http.StatusBadRequest,
	weather.CodeNotFound:     http.StatusBadRequest,
	codeInvalidUnit:          http.StatusBadRequest,
	weather.CodeUpstream:     http.StatusInternalServerError,
}

// HTTPError is an error already resolved to a status, a code and the message shown to callers.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError builds an HTTPError whose status follows code.
func NewHTTPError(code, message string, err error) *HTTPError {
	return &HTTPError{Status: StatusFor(code), Code: code, Message: message, Err: err}
}

// StatusFor maps an error code to its HTTP status; unknown codes are server errors.
func StatusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// asHTTPError resolves anything a handler recorded. AppErrors keep their code and
// message; anything unclassified is reported as the generic upstream failure.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	code := apperrors.Code(err)
	if code == "" {
		return NewHTTPError(weather.CodeUpstream, weather.MsgServerError, err)
	}
	return NewHTTPError(code, apperrors.Message(err), err)
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(asHTTPError(err))
	c.Abort()
}
