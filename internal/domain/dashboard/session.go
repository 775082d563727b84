package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yanqian/weather-dashboard/internal/domain/weather"
)

// Gateway is the client side of the weather proxy.
type Gateway interface {
	ByCity(ctx context.Context, city string) (weather.Payload, error)
	ByCoords(ctx context.Context, lat, lon float64) (weather.Payload, error)
}

// Locator resolves the device position.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// Session owns one interactive dashboard. A single goroutine (Run) applies
// actions, so State needs no locking; effects run concurrently and report back
// through the action queue. In-flight fetches are neither cancelled nor
// de-duplicated.
type Session struct {
	gateway Gateway
	locator Locator
	logger  *slog.Logger
	actions chan Action
	state   State
	wg      sync.WaitGroup
}

// NewSession builds a session starting from initial.
func NewSession(initial State, gateway Gateway, locator Locator, logger *slog.Logger) *Session {
	return &Session{
		gateway: gateway,
		locator: locator,
		logger:  logger.With("component", "dashboard.session"),
		actions: make(chan Action, 16),
		state:   initial,
	}
}

// Dispatch queues an action. It returns false when ctx ends before the action is accepted.
func (s *Session) Dispatch(ctx context.Context, a Action) bool {
	select {
	case s.actions <- a:
		return true
	case <-ctx.Done():
		return false
	}
}

// Run processes actions until ctx is done, calling onChange after every transition.
// It loads the session's starting city first.
func (s *Session) Run(ctx context.Context, onChange func(State)) error {
	defer s.wg.Wait()
	if onChange == nil {
		onChange = func(State) {}
	}

	s.apply(ctx, Search{City: s.state.City}, onChange)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-s.actions:
			s.apply(ctx, a, onChange)
		}
	}
}

func (s *Session) apply(ctx context.Context, a Action, onChange func(State)) {
	next, effects := Reduce(s.state, a)
	s.state = next
	s.logger.Debug("action applied", "kind", a.Kind(), "effects", len(effects), "loading", next.Loading)
	onChange(next)
	for _, eff := range effects {
		s.run(ctx, eff)
	}
}

func (s *Session) run(ctx context.Context, eff Effect) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if result := s.execute(ctx, eff); result != nil {
			s.Dispatch(ctx, result)
		}
	}()
}

func (s *Session) execute(ctx context.Context, eff Effect) Action {
	switch e := eff.(type) {
	case FetchCity:
		payload, err := s.gateway.ByCity(ctx, e.City)
		return s.loaded(payload, err, false)
	case FetchCoords:
		payload, err := s.gateway.ByCoords(ctx, e.Lat, e.Lon)
		return s.loaded(payload, err, true)
	case LocateDevice:
		if s.locator == nil {
			return LocationFailed{Err: ErrGeolocationUnsupported}
		}
		lat, lon, err := s.locator.Locate(ctx)
		if err != nil {
			s.logger.Warn("locate device failed", "error", err)
			return LocationFailed{Err: err}
		}
		return LocationResolved{Lat: lat, Lon: lon}
	default:
		s.logger.Error("unknown effect", "effect", eff)
		return nil
	}
}

func (s *Session) loaded(payload weather.Payload, err error, byCoords bool) Action {
	if err != nil {
		s.logger.Warn("weather request failed", "by_coords", byCoords, "error", err)
		return WeatherFailed{Err: err, ByCoords: byCoords}
	}
	snap, err := NewSnapshot(payload)
	if err != nil {
		s.logger.Error("weather payload unreadable", "error", err)
		return WeatherFailed{Err: err, ByCoords: byCoords}
	}
	return WeatherLoaded{Snapshot: snap, ByCoords: byCoords}
}
