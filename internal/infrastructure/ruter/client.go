package ruter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	apperrors "github.com/transit-graph/internal/pkg/errors"
	"go.uber.org/zap"
)

// plannerTimeLayout - ddMMyyyyHHmmss
const plannerTimeLayout = "02012006150405"

type client struct {
	fetcher  Fetcher
	baseURL  string
	location *time.Location
	logger   *zap.Logger
}

// NewClient создает клиент upstream API.
// location is the zone planner times are sent in.
func NewClient(fetcher Fetcher, baseURL string, location *time.Location, logger *zap.Logger) repository.TransitRepository {
	if location == nil {
		location = time.UTC
	}
	return &client{
		fetcher:  fetcher,
		baseURL:  strings.TrimRight(baseURL, "/"),
		location: location,
		logger:   logger,
	}
}

// CoordinateString formats a grid point the way the upstream expects it.
func CoordinateString(p domain.UTMLocation) string {
	return fmt.Sprintf("(X=%d,Y=%d)", p.X, p.Y)
}

func (c *client) getJSON(ctx context.Context, path string, params Params, out interface{}) error {
	rawURL := c.baseURL + path

	body, err := c.fetcher.Fetch(ctx, rawURL, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.UpstreamMalformedResponse(buildURL(rawURL, params), err)
	}
	return nil
}

func (c *client) GetStop(ctx context.Context, id int) (*domain.Stop, error) {
	c.logger.Debug("Fetching stop info", zap.Int("stop_id", id))

	var raw rawPlace
	if err := c.getJSON(ctx, fmt.Sprintf("/Place/GetStop/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	stop, err := parseStop(&raw)
	if err != nil {
		return nil, err
	}
	return &stop, nil
}

func (c *client) GetLine(ctx context.Context, id int) (*domain.Line, error) {
	c.logger.Debug("Fetching line info", zap.Int("line_id", id))

	var raw rawLine
	if err := c.getJSON(ctx, fmt.Sprintf("/Line/GetDataByLineID/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	line, err := parseLine(&raw)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (c *client) GetLinesByStopID(ctx context.Context, stopID int) ([]domain.Line, error) {
	c.logger.Debug("Fetching lines for stop", zap.Int("stop_id", stopID))

	var raw []rawLine
	if err := c.getJSON(ctx, fmt.Sprintf("/Line/GetLinesByStopID/%d", stopID), nil, &raw); err != nil {
		return nil, err
	}
	return parseLines(raw)
}

func (c *client) GetStopsByLineID(ctx context.Context, lineID int) ([]domain.Stop, error) {
	c.logger.Debug("Fetching stops for line", zap.Int("line_id", lineID))

	var raw []rawPlace
	if err := c.getJSON(ctx, fmt.Sprintf("/Line/GetStopsByLineID/%d", lineID), nil, &raw); err != nil {
		return nil, err
	}
	return parseStops(raw)
}

func (c *client) GetStopVisits(ctx context.Context, stopID int, filter domain.VisitFilter) ([]domain.RealtimeVisit, error) {
	c.logger.Debug("Fetching stop visits", zap.Int("stop_id", stopID))

	params := Params{}
	if len(filter.TransportTypes) > 0 {
		names := make([]string, 0, len(filter.TransportTypes))
		for _, t := range filter.TransportTypes {
			names = append(names, t.String())
		}
		params["transporttypes"] = strings.Join(names, ",")
	}
	if len(filter.LineNames) > 0 {
		params["linenames"] = strings.Join(filter.LineNames, ",")
	}

	var raw []rawVisit
	if err := c.getJSON(ctx, fmt.Sprintf("/StopVisit/GetDepartures/%d", stopID), params, &raw); err != nil {
		return nil, err
	}
	return parseVisits(raw)
}

func (c *client) GetPlacesByName(ctx context.Context, name string, types []domain.PlaceType) ([]domain.Place, error) {
	c.logger.Debug("Fetching places", zap.String("name", name))

	var raw []rawPlace
	if err := c.getJSON(ctx, "/Place/GetPlaces/"+url.PathEscape(name), nil, &raw); err != nil {
		return nil, err
	}
	places, err := parsePlaces(raw)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return places, nil
	}

	filtered := make([]domain.Place, 0, len(places))
	for _, p := range places {
		for _, t := range types {
			if p.Info().Type == t {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

func (c *client) GetClosestStops(ctx context.Context, point domain.UTMLocation, maxDistance *int) ([]domain.Stop, error) {
	c.logger.Debug("Fetching closest stops", zap.Int("x", point.X), zap.Int("y", point.Y))

	params := Params{"coordinates": CoordinateString(point)}
	if maxDistance != nil {
		params["maxdistance"] = strconv.Itoa(*maxDistance)
	}

	var raw []rawPlace
	if err := c.getJSON(ctx, "/Place/GetClosestStops", params, &raw); err != nil {
		return nil, err
	}
	return parseStops(raw)
}

func (c *client) GetStopsInArea(ctx context.Context, sw, ne domain.UTMLocation) ([]domain.Stop, error) {
	c.logger.Debug("Fetching stops in area",
		zap.Int("xmin", sw.X), zap.Int("ymin", sw.Y),
		zap.Int("xmax", ne.X), zap.Int("ymax", ne.Y))

	params := Params{
		"xmin": strconv.Itoa(sw.X),
		"ymin": strconv.Itoa(sw.Y),
		"xmax": strconv.Itoa(ne.X),
		"ymax": strconv.Itoa(ne.Y),
	}

	var raw []rawPlace
	if err := c.getJSON(ctx, "/Place/GetStopsByArea", params, &raw); err != nil {
		return nil, err
	}
	return parseStops(raw)
}

func placeQuery(loc domain.PlannerLocation) string {
	if loc.Kind == domain.PlannerLocationPoint {
		return CoordinateString(loc.Point)
	}
	return loc.ID
}

func (c *client) GetTravelPlan(ctx context.Context, query domain.TravelQuery) ([]domain.TravelProposal, error) {
	at := query.Time
	if at.IsZero() {
		at = time.Now()
	}

	params := Params{
		"fromplace": placeQuery(query.Origin),
		"toplace":   placeQuery(query.Destination),
		"isafter":   strconv.FormatBool(query.IsAfter),
		"time":      at.In(c.location).Format(plannerTimeLayout),
	}

	c.logger.Debug("Fetching travel plan",
		zap.String("from", params["fromplace"]),
		zap.String("to", params["toplace"]))

	var raw rawTravelResponse
	if err := c.getJSON(ctx, "/Travel/GetTravels", params, &raw); err != nil {
		return nil, err
	}
	return parseTravelPlan(&raw)
}

func (c *client) GetStreetHouses(ctx context.Context, streetID int) ([]domain.House, error) {
	c.logger.Debug("Fetching houses for street", zap.Int("street_id", streetID))

	var raw rawStreet
	if err := c.getJSON(ctx, fmt.Sprintf("/Street/GetStreet/%d", streetID), nil, &raw); err != nil {
		return nil, err
	}
	return parseStreetHouses(&raw)
}
