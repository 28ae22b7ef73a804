package ruter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	apperrors "github.com/transit-graph/internal/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) repository.TransitRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	return NewClient(newTestFetcher(), server.URL+"/", oslo, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestClient_GetStop(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Place/GetStop/3010011", r.URL.Path)
		writeJSON(w, `{"ID": 3010011, "Name": "Jernbanetorget", "X": 598020, "Y": 6643070, "Zone": "1"}`)
	})

	stop, err := c.GetStop(context.Background(), 3010011)
	require.NoError(t, err)
	assert.Equal(t, "Jernbanetorget", stop.Name)
	assert.Equal(t, domain.PlaceTypeStop, stop.Type)
}

func TestClient_GetLine(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Line/GetDataByLineID/17", r.URL.Path)
		writeJSON(w, `{"ID": 17, "Name": "17", "Transportation": 7, "LineColour": "0B91EF"}`)
	})

	line, err := c.GetLine(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, domain.TransportationTram, line.TransportationType)
}

func TestClient_GetLinesAndStops(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Line/GetLinesByStopID/3010011":
			writeJSON(w, `[{"ID": 17, "Name": "17", "Transportation": 7}, {"ID": 1, "Name": "1", "Transportation": 8}]`)
		case "/Line/GetStopsByLineID/17":
			writeJSON(w, `[{"ID": 3010011, "Name": "Jernbanetorget", "X": 1, "Y": 2}]`)
		default:
			http.NotFound(w, r)
		}
	})

	lines, err := c.GetLinesByStopID(context.Background(), 3010011)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	stops, err := c.GetStopsByLineID(context.Background(), 17)
	require.NoError(t, err)
	assert.Len(t, stops, 1)

	_, err = c.GetStopsByLineID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestClient_GetStopVisits_Filters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/StopVisit/GetDepartures/3010011", r.URL.Path)
		assert.Equal(t, "Tram,Metro", r.URL.Query().Get("transporttypes"))
		assert.Equal(t, "17,18", r.URL.Query().Get("linenames"))
		writeJSON(w, `[]`)
	})

	visits, err := c.GetStopVisits(context.Background(), 3010011, domain.VisitFilter{
		TransportTypes: []domain.TransportationType{domain.TransportationTram, domain.TransportationMetro},
		LineNames:      []string{"17", "18"},
	})
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestClient_GetPlacesByName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Place/GetPlaces/Karl Johan", r.URL.Path)
		writeJSON(w, `[
			{"ID": 1, "Name": "Karl Johan", "PlaceType": "Stop", "X": 1, "Y": 1},
			{"ID": 2, "Name": "Karl Johans gate", "PlaceType": "Street"}
		]`)
	})

	all, err := c.GetPlacesByName(context.Background(), "Karl Johan", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	streets, err := c.GetPlacesByName(context.Background(), "Karl Johan", []domain.PlaceType{domain.PlaceTypeStreet})
	require.NoError(t, err)
	require.Len(t, streets, 1)
	assert.Equal(t, 2, streets[0].Info().ID)
}

func TestClient_GetClosestStops(t *testing.T) {
	t.Run("without max distance", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "(X=598000,Y=6643000)", r.URL.Query().Get("coordinates"))
			assert.False(t, r.URL.Query().Has("maxdistance"))
			writeJSON(w, `[{"ID": 1, "Name": "A", "X": 1, "Y": 1}]`)
		})

		stops, err := c.GetClosestStops(context.Background(), domain.UTMLocation{X: 598000, Y: 6643000}, nil)
		require.NoError(t, err)
		assert.Len(t, stops, 1)
	})

	t.Run("with max distance", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "500", r.URL.Query().Get("maxdistance"))
			writeJSON(w, `[]`)
		})

		max := 500
		_, err := c.GetClosestStops(context.Background(), domain.UTMLocation{X: 1, Y: 2}, &max)
		require.NoError(t, err)
	})
}

func TestClient_GetStopsInArea(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/Place/GetStopsByArea", r.URL.Path)
		assert.Equal(t, "1", q.Get("xmin"))
		assert.Equal(t, "2", q.Get("ymin"))
		assert.Equal(t, "3", q.Get("xmax"))
		assert.Equal(t, "4", q.Get("ymax"))
		writeJSON(w, `[]`)
	})

	_, err := c.GetStopsInArea(context.Background(), domain.UTMLocation{X: 1, Y: 2}, domain.UTMLocation{X: 3, Y: 4})
	require.NoError(t, err)
}

func TestClient_GetTravelPlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/Travel/GetTravels", r.URL.Path)
		assert.Equal(t, "3010011", q.Get("fromplace"))
		assert.Equal(t, "(X=598000,Y=6643000)", q.Get("toplace"))
		assert.Equal(t, "true", q.Get("isafter"))
		assert.Equal(t, "10122015173000", q.Get("time"))
		writeJSON(w, `{"TravelProposals": []}`)
	})

	proposals, err := c.GetTravelPlan(context.Background(), domain.TravelQuery{
		Origin:      domain.PlannerLocation{Kind: domain.PlannerLocationStop, ID: "3010011"},
		Destination: domain.PlannerLocation{Kind: domain.PlannerLocationPoint, Point: domain.UTMLocation{X: 598000, Y: 6643000}},
		Time:        time.Date(2015, 12, 10, 16, 30, 0, 0, time.UTC),
		IsAfter:     true,
	})
	require.NoError(t, err)
	assert.Empty(t, proposals)
}

func TestClient_GetStreetHouses(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Street/GetStreet/42", r.URL.Path)
		writeJSON(w, `{"ID": 42, "Name": "Storgata", "District": "Oslo", "Houses": [{"Name": "1", "X": 1, "Y": 2}]}`)
	})

	houses, err := c.GetStreetHouses(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, houses, 1)
	assert.Equal(t, "Storgata", houses[0].StreetName)
}

func TestClient_UnexpectedShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"Message": "not a list"}`)
	})

	_, err := c.GetLinesByStopID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamMalformedResponse)
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "(X=598000,Y=6643000)", CoordinateString(domain.UTMLocation{X: 598000, Y: 6643000}))
}
