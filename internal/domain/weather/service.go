package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/weather-dashboard/pkg/errors"
	"github.com/yanqian/weather-dashboard/pkg/metrics"
)

// Service exposes the gateway operation.
type Service interface {
	Fetch(ctx context.Context, q Query) (Payload, error)
}

// UpstreamClient fetches one raw document from the weather provider.
type UpstreamClient interface {
	Fetch(ctx context.Context, endpoint Endpoint, loc Location) (json.RawMessage, error)
}

type service struct {
	cfg      Config
	upstream UpstreamClient
	logger   *slog.Logger
}

// NewService wires up the gateway domain.
func NewService(cfg Config, upstream UpstreamClient, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		upstream: upstream,
		logger:   logger.With("component", "weather.service"),
	}
}

// Fetch resolves q and requests current conditions and the forecast in parallel.
// Both calls must succeed; there is no partial result and no retry.
func (s *service) Fetch(ctx context.Context, q Query) (Payload, error) {
	loc, err := Resolve(q)
	if err != nil {
		return Payload{}, apperrors.Wrap(CodeInvalidQuery, MsgMissingParams, err)
	}

	var (
		payload Payload
		latency metrics.UpstreamLatency
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		defer latency.Observe("current", start)
		raw, err := s.upstream.Fetch(gctx, EndpointCurrent, loc)
		if err != nil {
			return err
		}
		payload.Current = raw
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		defer latency.Observe("forecast", start)
		raw, err := s.upstream.Fetch(gctx, EndpointForecast, loc)
		if err != nil {
			return err
		}
		payload.Forecast = raw
		return nil
	})

	if err := g.Wait(); err != nil {
		if IsStatusError(err) {
			s.logger.Warn("weather data not found", "location", loc.String(), "provider", s.cfg.Provider, "error", err)
			return Payload{}, apperrors.Wrap(CodeNotFound, MsgNotFound, err)
		}
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return Payload{}, apperrors.Wrap(CodeUpstream, MsgServerError, ctx.Err())
		}
		s.logger.Error("weather upstream failed", "location", loc.String(), "provider", s.cfg.Provider, "error", err)
		return Payload{}, apperrors.Wrap(CodeUpstream, MsgServerError, fmt.Errorf("fetch %s: %w", loc.String(), err))
	}

	s.logger.Info("weather fetched",
		"location", loc.String(),
		"by_coords", loc.ByCoords,
		"current_ms", latency.CurrentMs,
		"forecast_ms", latency.ForecastMs,
	)
	return payload, nil
}
