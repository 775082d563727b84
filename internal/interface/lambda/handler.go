// Package lambda exposes the weather gateway as an API Gateway proxy function.
package lambda

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/yanqian/weather-dashboard/internal/domain/weather"
	apperrors "github.com/yanqian/weather-dashboard/pkg/errors"
)

// Handler adapts API Gateway proxy events to the gateway service.
type Handler struct {
	svc    weather.Service
	logger *slog.Logger
}

// NewHandler builds the function handler.
func NewHandler(svc weather.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger.With("component", "lambda.handler")}
}

// Handle serves one invocation. Failures are reported through the status code, never the error return.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	payload, err := h.svc.Fetch(ctx, queryFrom(req.QueryStringParameters))
	if err != nil {
		status := http.StatusInternalServerError
		code := apperrors.Code(err)
		message := apperrors.Message(err)
		switch code {
		case weather.CodeInvalidQuery, weather.CodeNotFound:
			status = http.StatusBadRequest
		case weather.CodeUpstream:
		default:
			code = weather.CodeUpstream
			message = weather.MsgServerError
		}
		h.logger.Warn("weather request failed", "status", status, "code", code, "request_id", req.RequestContext.RequestID, "error", err)
		return h.errorResponse(status, code, message), nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("encode payload failed", "error", err)
		return h.errorResponse(http.StatusInternalServerError, weather.CodeUpstream, weather.MsgServerError), nil
	}
	return response(http.StatusOK, body), nil
}

// queryFrom passes the raw values through; the service decides what counts as absent.
func queryFrom(params map[string]string) weather.Query {
	return weather.Query{City: params["city"], Lat: params["lat"], Lon: params["lon"]}
}

func (h *Handler) errorResponse(status int, code, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{"error": message, "code": code})
	return response(status, body)
}

func response(status int, body []byte) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}
