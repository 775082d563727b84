package weather

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/weather-dashboard/pkg/errors"
)

func TestServiceFetchCombinesBothDocuments(t *testing.T) {
	upstream := &stubUpstream{
		responses: map[Endpoint]json.RawMessage{
			EndpointCurrent:  json.RawMessage(`{"name":"London"}`),
			EndpointForecast: json.RawMessage(`{"list":[]}`),
		},
	}
	svc := newServiceUnderTest(upstream)

	payload, err := svc.Fetch(context.Background(), Query{City: " London "})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"London"}`, string(payload.Current))
	require.JSONEq(t, `{"list":[]}`, string(payload.Forecast))
	require.ElementsMatch(t, []Endpoint{EndpointCurrent, EndpointForecast}, upstream.endpoints())
	for _, loc := range upstream.locations() {
		require.Equal(t, Location{City: "London"}, loc)
	}
}

func TestServiceFetchByCoordinates(t *testing.T) {
	upstream := &stubUpstream{responses: map[Endpoint]json.RawMessage{
		EndpointCurrent:  json.RawMessage(`{}`),
		EndpointForecast: json.RawMessage(`{}`),
	}}
	svc := newServiceUnderTest(upstream)

	_, err := svc.Fetch(context.Background(), Query{Lat: "51.5", Lon: "-0.12"})
	require.NoError(t, err)
	require.Len(t, upstream.locations(), 2)
	require.Equal(t, Location{Lat: 51.5, Lon: -0.12, ByCoords: true}, upstream.locations()[0])
}

func TestServiceFetchRejectsEmptyQueryWithoutNetwork(t *testing.T) {
	upstream := &stubUpstream{}
	svc := newServiceUnderTest(upstream)

	queries := []Query{
		{},
		{City: "   "},
		{Lat: "10"},
		{Lat: "120", Lon: "0"},
		{Lat: "", Lon: ""},
		{City: "", Lat: " ", Lon: "\t"},
		{Lat: "NaN", Lon: "0"},
		{Lat: "0", Lon: "+Inf"},
		{Lat: "north", Lon: "1"},
	}
	for _, q := range queries {
		_, err := svc.Fetch(context.Background(), q)
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, CodeInvalidQuery), "query %+v", q)
		require.Equal(t, MsgMissingParams, apperrors.Message(err))
	}
	require.Empty(t, upstream.endpoints())
}

func TestServiceFetchUpstreamMiss(t *testing.T) {
	upstream := &stubUpstream{
		responses: map[Endpoint]json.RawMessage{EndpointCurrent: json.RawMessage(`{}`)},
		errs: map[Endpoint]error{
			EndpointForecast: &StatusError{Endpoint: EndpointForecast, StatusCode: 404, Body: `{"cod":"404"}`},
		},
	}
	svc := newServiceUnderTest(upstream)

	payload, err := svc.Fetch(context.Background(), Query{City: "Atlantis"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, CodeNotFound))
	require.Equal(t, MsgNotFound, apperrors.Message(err))
	require.Empty(t, payload.Current)
	require.Len(t, upstream.endpoints(), 2)
}

func TestServiceFetchTransportFailure(t *testing.T) {
	upstream := &stubUpstream{
		errs: map[Endpoint]error{EndpointCurrent: errors.New("dial tcp: connection refused")},
		responses: map[Endpoint]json.RawMessage{
			EndpointForecast: json.RawMessage(`{}`),
		},
	}
	svc := newServiceUnderTest(upstream)

	_, err := svc.Fetch(context.Background(), Query{City: "London"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, CodeUpstream))
	require.Equal(t, MsgServerError, apperrors.Message(err))
}

func TestResolvePrefersCity(t *testing.T) {
	loc, err := Resolve(Query{City: "Paris", Lat: "1", Lon: "2"})
	require.NoError(t, err)
	require.Equal(t, Location{City: "Paris"}, loc)
	require.Equal(t, "Paris", loc.String())

	loc, err = Resolve(Query{Lat: "0", Lon: "0"})
	require.NoError(t, err)
	require.True(t, loc.ByCoords)
	require.Equal(t, "0,0", loc.String())
}

func TestResolveTreatsBlankCoordinatesAsAbsent(t *testing.T) {
	_, err := Resolve(Query{Lat: "", Lon: ""})
	require.ErrorIs(t, err, errNoLocation)

	_, err = Resolve(Query{Lat: "51.5", Lon: " "})
	require.ErrorIs(t, err, errPartialCoord)

	loc, err := Resolve(Query{Lat: " 51.5 ", Lon: "-0.12"})
	require.NoError(t, err)
	require.Equal(t, Location{Lat: 51.5, Lon: -0.12, ByCoords: true}, loc)
}

func TestResolveAcceptsLongCityNames(t *testing.T) {
	city := strings.Repeat("Llanfair", 20)
	loc, err := Resolve(Query{City: city})
	require.NoError(t, err)
	require.Equal(t, city, loc.City)
}

func newServiceUnderTest(upstream UpstreamClient) Service {
	return NewService(Config{Provider: "test"}, upstream, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubUpstream struct {
	mu        sync.Mutex
	responses map[Endpoint]json.RawMessage
	errs      map[Endpoint]error
	calls     []Endpoint
	locs      []Location
}

func (s *stubUpstream) Fetch(ctx context.Context, endpoint Endpoint, loc Location) (json.RawMessage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, endpoint)
	s.locs = append(s.locs, loc)
	s.mu.Unlock()
	if err := s.errs[endpoint]; err != nil {
		return nil, err
	}
	return s.responses[endpoint], nil
}

func (s *stubUpstream) endpoints() []Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Endpoint(nil), s.calls...)
}

func (s *stubUpstream) locations() []Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Location(nil), s.locs...)
}
