package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-graph/internal/config"
	"github.com/transit-graph/internal/delivery/graph"
	"github.com/transit-graph/internal/delivery/http/handler"
	"github.com/transit-graph/internal/delivery/http/middleware"
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/usecase"
)

// stubTransit - TransitRepository с заранее заданными ответами
type stubTransit struct {
	stop   *domain.Stop
	lines  []domain.Line
	visits []domain.RealtimeVisit
	places []domain.Place
	stops  []domain.Stop
	plan   []domain.TravelProposal
	houses []domain.House
	err    error

	lastPoint domain.UTMLocation
	lastQuery domain.TravelQuery
}

func (s *stubTransit) GetStop(context.Context, int) (*domain.Stop, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stop, nil
}

func (s *stubTransit) GetLine(_ context.Context, id int) (*domain.Line, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, l := range s.lines {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (s *stubTransit) GetLinesByStopID(context.Context, int) ([]domain.Line, error) {
	return s.lines, s.err
}

func (s *stubTransit) GetStopsByLineID(context.Context, int) ([]domain.Stop, error) {
	return s.stops, s.err
}

func (s *stubTransit) GetStopVisits(context.Context, int, domain.VisitFilter) ([]domain.RealtimeVisit, error) {
	return s.visits, s.err
}

func (s *stubTransit) GetPlacesByName(context.Context, string, []domain.PlaceType) ([]domain.Place, error) {
	return s.places, s.err
}

func (s *stubTransit) GetClosestStops(_ context.Context, point domain.UTMLocation, _ *int) ([]domain.Stop, error) {
	s.lastPoint = point
	return s.stops, s.err
}

func (s *stubTransit) GetStopsInArea(context.Context, domain.UTMLocation, domain.UTMLocation) ([]domain.Stop, error) {
	return s.stops, s.err
}

func (s *stubTransit) GetTravelPlan(_ context.Context, query domain.TravelQuery) ([]domain.TravelProposal, error) {
	s.lastQuery = query
	return s.plan, s.err
}

func (s *stubTransit) GetStreetHouses(context.Context, int) ([]domain.House, error) {
	return s.houses, s.err
}

func newTestServer(t *testing.T, repo *stubTransit) *Server {
	t.Helper()
	logger := zap.NewNop()

	stopUC := usecase.NewStopUseCase(repo, logger)
	lineUC := usecase.NewLineUseCase(repo, logger)
	placeUC := usecase.NewPlaceUseCase(repo, logger)
	plannerUC := usecase.NewPlannerUseCase(repo, logger)

	schema, err := graph.NewSchema(stopUC, lineUC, placeUC, plannerUC, logger)
	require.NoError(t, err)

	cfg := &config.Config{Server: config.ServerConfig{CORSAllowOrigins: "*"}}
	return NewServer(
		cfg,
		logger,
		handler.NewStopHandler(stopUC, logger),
		handler.NewLineHandler(lineUC, logger),
		handler.NewPlaceHandler(placeUC, logger),
		handler.NewPlannerHandler(plannerUC, logger),
		handler.NewGraphQLHandler(schema, logger),
	)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, s *Server, req *nethttp.Request) (*nethttp.Response, envelope) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp, env
}

func postJSON(path string, body any) *nethttp.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, &stubTransit{})

	resp, err := s.App().Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, &stubTransit{})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(middleware.RequestIDHeader))
}

func TestStopHandler_GetStop(t *testing.T) {
	repo := &stubTransit{stop: &domain.Stop{ID: 3010011, Name: "Jernbanetorget", Type: domain.PlaceTypeStop}}
	s := newTestServer(t, repo)

	t.Run("ok", func(t *testing.T) {
		resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/stops/3010011", nil))

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		var stop domain.Stop
		require.NoError(t, json.Unmarshal(env.Data, &stop))
		assert.Equal(t, "Jernbanetorget", stop.Name)
	})

	t.Run("non numeric id", func(t *testing.T) {
		resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/stops/abc", nil))

		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
	})
}

func TestStopHandler_UpstreamFailure(t *testing.T) {
	repo := &stubTransit{err: errors.UpstreamUnavailable("https://reisapi.ruter.no/Place/GetStop/1", 500, nil)}
	s := newTestServer(t, repo)

	resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/stops/1", nil))

	assert.Equal(t, nethttp.StatusBadGateway, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, errors.CodeUpstreamUnavailable, env.Error.Code)
}

func TestStopHandler_GetStopLines(t *testing.T) {
	repo := &stubTransit{lines: []domain.Line{
		{ID: 1, Name: "1", TransportationType: domain.TransportationMetro},
		{ID: 31, Name: "31", TransportationType: domain.TransportationBus},
	}}
	s := newTestServer(t, repo)

	t.Run("filtered by type", func(t *testing.T) {
		_, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/stops/1/lines?transportation_types=Bus", nil))

		var lines []domain.Line
		require.NoError(t, json.Unmarshal(env.Data, &lines))
		require.Len(t, lines, 1)
		assert.Equal(t, 31, lines[0].ID)
		assert.EqualValues(t, 1, env.Meta["total"])
	})

	t.Run("unknown type", func(t *testing.T) {
		resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/stops/1/lines?transportation_types=Zeppelin", nil))

		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
	})
}

func TestStopHandler_GetStopRealtime(t *testing.T) {
	p1 := "1"
	repo := &stubTransit{visits: []domain.RealtimeVisit{
		{StopID: 1, LineID: 5, DestinationName: "Sognsvann", Direction: "1", LineColour: "EC700C", Platform: &p1},
		{StopID: 1, LineID: 5, DestinationName: "Vestli", Direction: "2", LineColour: "EC700C", Platform: &p1},
	}}
	s := newTestServer(t, repo)

	_, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/stops/1/realtime?direction=2", nil))

	var rt struct {
		Visits       []domain.RealtimeVisit `json:"visits"`
		Destinations []struct {
			Color string `json:"color"`
		} `json:"destinations"`
		Platforms []struct {
			Name string `json:"name"`
		} `json:"platforms"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rt))
	require.Len(t, rt.Visits, 1)
	assert.Equal(t, "Vestli", rt.Visits[0].DestinationName)
	require.Len(t, rt.Destinations, 2)
	assert.Equal(t, "#EC700C", rt.Destinations[0].Color)
	require.Len(t, rt.Platforms, 1)
}

func TestPlaceHandler_SearchPlaces(t *testing.T) {
	repo := &stubTransit{places: []domain.Place{&domain.Street{ID: 7, Name: "Storgata", Type: domain.PlaceTypeStreet}}}
	s := newTestServer(t, repo)

	t.Run("ok", func(t *testing.T) {
		resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/places?name=storg&type=Street", nil))

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[{"id":7,"name":"Storgata","district":"","placeType":"Street"}]`, string(env.Data))
	})

	t.Run("missing name", func(t *testing.T) {
		resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/places", nil))

		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "required", env.Error.Details["name"])
	})

	t.Run("unknown type", func(t *testing.T) {
		resp, _ := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/places?name=x&type=Planet", nil))
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	})
}

func TestPlaceHandler_GetClosestStops(t *testing.T) {
	repo := &stubTransit{stops: []domain.Stop{{ID: 1}}}
	s := newTestServer(t, repo)

	t.Run("utm", func(t *testing.T) {
		resp, _ := do(t, s, postJSON("/api/v1/stops/closest", map[string]any{
			"location":     map[string]any{"utmLocation": map[string]any{"x": 597000, "y": 6643000}},
			"max_distance": 800,
		}))

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.UTMLocation{X: 597000, Y: 6643000}, repo.lastPoint)
	})

	t.Run("no location", func(t *testing.T) {
		resp, env := do(t, s, postJSON("/api/v1/stops/closest", map[string]any{"location": map[string]any{}}))

		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.CodeAmbiguousLocationInput, env.Error.Code)
	})

	t.Run("broken body", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/stops/closest", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, env := do(t, s, req)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
	})
}

func TestPlannerHandler_PlanTravel(t *testing.T) {
	repo := &stubTransit{plan: []domain.TravelProposal{{TravelTimeMins: 14, Remarks: []string{}, Zones: []string{}}}}
	s := newTestServer(t, repo)

	resp, env := do(t, s, postJSON("/api/v1/travel/plan", map[string]any{
		"origin":      map[string]any{"stop": map[string]any{"id": "3010011"}},
		"destination": map[string]any{"utm": map[string]any{"x": 597000, "y": 6643000}},
		"time":        "2015-12-10T17:30:00+01:00",
	}))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"proposals":[{"departureTime":"","arrivalTime":"","travelTimeMins":14,"remarks":[],"zones":[],"stages":null}]}`, string(env.Data))
	assert.Equal(t, domain.PlannerLocationStop, repo.lastQuery.Origin.Kind)
	assert.Equal(t, domain.PlannerLocationPoint, repo.lastQuery.Destination.Kind)
	assert.True(t, repo.lastQuery.IsAfter)
}

func TestGraphQLHandler_Query(t *testing.T) {
	repo := &stubTransit{stop: &domain.Stop{ID: 1, Name: "Jernbanetorget", Type: domain.PlaceTypeStop}}
	s := newTestServer(t, repo)

	t.Run("ok", func(t *testing.T) {
		resp, err := s.App().Test(postJSON("/graphql", map[string]any{
			"query":     `query Stop($id: ID!) { stop(id: $id) { name placeType } }`,
			"variables": map[string]any{"id": "1"},
		}))
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"data":{"stop":{"name":"Jernbanetorget","placeType":"STOP"}}}`, string(body))
	})

	t.Run("empty query", func(t *testing.T) {
		resp, env := do(t, s, postJSON("/graphql", map[string]any{}))

		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t, &stubTransit{})

	resp, env := do(t, s, httptest.NewRequest(nethttp.MethodGet, "/api/v1/nowhere", nil))

	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, errors.CodeNotFound, env.Error.Code)
}
