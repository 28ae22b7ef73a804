package ruter

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/transit-graph/internal/domain"
	apperrors "github.com/transit-graph/internal/pkg/errors"
)

const lowFloorFeature = "lowFloor"

func requireString(record, field string, v *string) (string, error) {
	if v == nil {
		return "", apperrors.MalformedRecord(record, field)
	}
	return *v, nil
}

func requireInt(record, field string, v *int) (int, error) {
	if v == nil {
		return 0, apperrors.MalformedRecord(record, field)
	}
	return *v, nil
}

func requirePoint(record, field string, x, y *float64) (domain.GeoLocation, domain.UTMLocation, error) {
	if x == nil || y == nil {
		return domain.GeoLocation{}, domain.UTMLocation{}, apperrors.MalformedRecord(record, field)
	}
	geo, grid := domain.LocationFromUTM(int(*x), int(*y))
	return geo, grid, nil
}

func placeHeader(record string, raw *rawPlace) (int, string, error) {
	id, err := requireInt(record, "ID", raw.ID)
	if err != nil {
		return 0, "", err
	}
	name, err := requireString(record, "Name", raw.Name)
	if err != nil {
		return 0, "", err
	}
	return id, strings.TrimSpace(name), nil
}

func parseStop(raw *rawPlace) (domain.Stop, error) {
	id, name, err := placeHeader("Stop", raw)
	if err != nil {
		return domain.Stop{}, err
	}
	geo, grid, err := requirePoint("Stop", "X/Y", raw.X, raw.Y)
	if err != nil {
		return domain.Stop{}, err
	}

	placeType := domain.PlaceType(raw.PlaceType)
	if placeType == "" {
		placeType = domain.PlaceTypeStop
	}

	var walking *int
	if raw.WalkingMinutes != 0 {
		mins := raw.WalkingMinutes
		walking = &mins
	}

	return domain.Stop{
		ID:              id,
		Name:            name,
		District:        raw.District,
		Type:            placeType,
		ShortName:       raw.ShortName,
		Zone:            raw.Zone,
		IsHub:           raw.IsHub,
		GeoLocation:     geo,
		UTMLocation:     grid,
		WalkingTimeMins: walking,
	}, nil
}

func parseStops(raws []rawPlace) ([]domain.Stop, error) {
	stops := make([]domain.Stop, 0, len(raws))
	for i := range raws {
		stop, err := parseStop(&raws[i])
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// parsePOI drops nested stops with ID 0, which the upstream uses for "no stop".
func parsePOI(raw *rawPlace) (*domain.POI, error) {
	id, name, err := placeHeader("POI", raw)
	if err != nil {
		return nil, err
	}
	geo, grid, err := requirePoint("POI", "X/Y", raw.X, raw.Y)
	if err != nil {
		return nil, err
	}

	nearby := make([]rawPlace, 0, len(raw.Stops))
	for _, s := range raw.Stops {
		if s.ID != nil && *s.ID == 0 {
			continue
		}
		nearby = append(nearby, s)
	}
	stops, err := parseStops(nearby)
	if err != nil {
		return nil, err
	}

	return &domain.POI{
		ID:          id,
		Name:        name,
		District:    raw.District,
		Type:        domain.PlaceTypePOI,
		GeoLocation: geo,
		UTMLocation: grid,
		NearbyStops: stops,
	}, nil
}

func parseArea(raw *rawPlace) (*domain.Area, error) {
	id, name, err := placeHeader("Area", raw)
	if err != nil {
		return nil, err
	}
	if raw.Center == nil {
		return nil, apperrors.MalformedRecord("Area", "Center")
	}
	geo, grid, err := requirePoint("Area", "Center", raw.Center.X, raw.Center.Y)
	if err != nil {
		return nil, err
	}
	stops, err := parseStops(raw.Stops)
	if err != nil {
		return nil, err
	}

	return &domain.Area{
		ID:          id,
		Name:        name,
		District:    raw.District,
		Type:        domain.PlaceTypeArea,
		GeoLocation: geo,
		UTMLocation: grid,
		Stops:       stops,
	}, nil
}

// parsePlace resolves the place variant once, from PlaceType.
func parsePlace(raw *rawPlace) (domain.Place, error) {
	switch domain.PlaceType(raw.PlaceType) {
	case domain.PlaceTypeStop:
		stop, err := parseStop(raw)
		if err != nil {
			return nil, err
		}
		return &stop, nil
	case domain.PlaceTypePOI:
		return parsePOI(raw)
	case domain.PlaceTypeArea:
		return parseArea(raw)
	case domain.PlaceTypeStreet:
		id, name, err := placeHeader("Street", raw)
		if err != nil {
			return nil, err
		}
		return &domain.Street{ID: id, Name: name, District: raw.District, Type: domain.PlaceTypeStreet}, nil
	default:
		id, name, err := placeHeader("Place", raw)
		if err != nil {
			return nil, err
		}
		return &domain.OtherPlace{ID: id, Name: name, District: raw.District, Type: domain.PlaceType(raw.PlaceType)}, nil
	}
}

func parsePlaces(raws []rawPlace) ([]domain.Place, error) {
	places := make([]domain.Place, 0, len(raws))
	for i := range raws {
		place, err := parsePlace(&raws[i])
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}
	return places, nil
}

func parseLine(raw *rawLine) (domain.Line, error) {
	id, err := requireInt("Line", "ID", raw.ID)
	if err != nil {
		return domain.Line{}, err
	}
	name, err := requireString("Line", "Name", raw.Name)
	if err != nil {
		return domain.Line{}, err
	}

	return domain.Line{
		ID:                 id,
		Name:               strings.TrimSpace(name),
		TransportationType: domain.TransportationType(raw.Transportation),
		Color:              raw.LineColour,
	}, nil
}

func parseLines(raws []rawLine) ([]domain.Line, error) {
	lines := make([]domain.Line, 0, len(raws))
	for i := range raws {
		line, err := parseLine(&raws[i])
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseDeviations(raws []rawDeviation) []domain.Deviation {
	deviations := make([]domain.Deviation, 0, len(raws))
	for _, d := range raws {
		deviations = append(deviations, domain.Deviation{ID: d.ID, Header: d.Header})
	}
	return deviations
}

func parseRef(record, field string, v *string) (int, error) {
	s, err := requireString(record, field, v)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperrors.MalformedRecord(record, field).Wrap(err)
	}
	return n, nil
}

// formatTimestamp renders an upstream timestamp for display, keeping its offset.
func formatTimestamp(record, field string, v *string) (string, error) {
	s, err := requireString(record, field, v)
	if err != nil {
		return "", err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// Offset-less timestamps are read as UTC
		if t, err = time.Parse("2006-01-02T15:04:05", s); err != nil {
			return "", apperrors.MalformedRecord(record, field).Wrap(err)
		}
	}
	return t.Format(domain.DisplayTimeLayout), nil
}

func parseVisit(raw *rawVisit) (domain.RealtimeVisit, error) {
	const record = "StopVisit"

	journey := raw.MonitoredVehicleJourney
	if journey == nil {
		return domain.RealtimeVisit{}, apperrors.MalformedRecord(record, "MonitoredVehicleJourney")
	}
	if journey.MonitoredCall == nil {
		return domain.RealtimeVisit{}, apperrors.MalformedRecord(record, "MonitoredVehicleJourney.MonitoredCall")
	}

	stopID, err := parseRef(record, "MonitoringRef", raw.MonitoringRef)
	if err != nil {
		return domain.RealtimeVisit{}, err
	}
	lineID, err := parseRef(record, "MonitoredVehicleJourney.LineRef", journey.LineRef)
	if err != nil {
		return domain.RealtimeVisit{}, err
	}
	recordedAt, err := formatTimestamp(record, "RecordedAtTime", raw.RecordedAtTime)
	if err != nil {
		return domain.RealtimeVisit{}, err
	}
	expected, err := formatTimestamp(record, "MonitoredCall.ExpectedArrivalTime", journey.MonitoredCall.ExpectedArrivalTime)
	if err != nil {
		return domain.RealtimeVisit{}, err
	}

	mode, err := requireInt(record, "MonitoredVehicleJourney.VehicleMode", journey.VehicleMode)
	if err != nil {
		return domain.RealtimeVisit{}, err
	}
	transportationType, ok := domain.TransportationTypeFromVehicleMode(mode)
	if !ok {
		return domain.RealtimeVisit{}, apperrors.MalformedRecord(record, "MonitoredVehicleJourney.VehicleMode").
			WithDetails(map[string]interface{}{"record": record, "field": "VehicleMode", "value": mode})
	}

	deviations := []domain.Deviation{}
	lineColour := ""
	if raw.Extensions != nil {
		deviations = parseDeviations(raw.Extensions.Deviations)
		lineColour = raw.Extensions.LineColour
	}

	var platform *string
	if p := journey.MonitoredCall.DeparturePlatformName; p != nil {
		name := *p
		platform = &name
	}

	return domain.RealtimeVisit{
		StopID:             stopID,
		LineID:             lineID,
		DestinationName:    journey.DestinationName,
		Name:               journey.PublishedLineName,
		Direction:          journey.DirectionRef,
		RecordedAtTime:     recordedAt,
		ExpectedArrival:    expected,
		Deviations:         deviations,
		LineColour:         lineColour,
		Platform:           platform,
		InCongestion:       journey.InCongestion,
		Monitored:          journey.Monitored,
		TransportationType: transportationType,
		LowFloor:           journey.VehicleFeatureRef != nil && *journey.VehicleFeatureRef == lowFloorFeature,
	}, nil
}

func parseVisits(raws []rawVisit) ([]domain.RealtimeVisit, error) {
	visits := make([]domain.RealtimeVisit, 0, len(raws))
	for i := range raws {
		visit, err := parseVisit(&raws[i])
		if err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	return visits, nil
}

// parseDuration turns "HH:MM:SS" into whole minutes. Seconds are dropped.
func parseDuration(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, apperrors.MalformedRecord("TravelProposal", "duration").
			WithDetails(map[string]interface{}{"record": "TravelProposal", "field": "duration", "value": s})
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperrors.MalformedRecord("TravelProposal", "duration").Wrap(err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperrors.MalformedRecord("TravelProposal", "duration").Wrap(err)
	}
	return hours*60 + mins, nil
}

// parseStage picks the variant from the transportation code: 0 is walking.
func parseStage(raw *rawStage) (domain.TravelStage, error) {
	duration := raw.TravelTime
	if duration == "" {
		duration = raw.WalkingTime
	}
	mins, err := parseDuration(duration)
	if err != nil {
		return nil, err
	}
	transportationType := domain.TransportationType(raw.Transportation)

	if transportationType == domain.TransportationWalking {
		if raw.ArrivalPoint == nil {
			return nil, apperrors.MalformedRecord("WalkingStage", "ArrivalPoint")
		}
		if raw.DeparturePoint == nil {
			return nil, apperrors.MalformedRecord("WalkingStage", "DeparturePoint")
		}
		arrGeo, arrGrid, err := requirePoint("WalkingStage", "ArrivalPoint", raw.ArrivalPoint.X, raw.ArrivalPoint.Y)
		if err != nil {
			return nil, err
		}
		depGeo, depGrid, err := requirePoint("WalkingStage", "DeparturePoint", raw.DeparturePoint.X, raw.DeparturePoint.Y)
		if err != nil {
			return nil, err
		}
		return &domain.WalkingStage{
			Kind:                 domain.StageKindWalking,
			DepartureTime:        raw.DepartureTime,
			ArrivalTime:          raw.ArrivalTime,
			TravelTimeMins:       mins,
			TransportationType:   transportationType,
			ArrivalGeoLocation:   arrGeo,
			ArrivalUTMLocation:   arrGrid,
			DepartureGeoLocation: depGeo,
			DepartureUTMLocation: depGrid,
		}, nil
	}

	if raw.DepartureStop == nil {
		return nil, apperrors.MalformedRecord("TransitStage", "DepartureStop")
	}
	if raw.ArrivalStop == nil {
		return nil, apperrors.MalformedRecord("TransitStage", "ArrivalStop")
	}
	departure, err := parseStop(raw.DepartureStop)
	if err != nil {
		return nil, err
	}
	arrival, err := parseStop(raw.ArrivalStop)
	if err != nil {
		return nil, err
	}

	return &domain.TransitStage{
		Kind:               domain.StageKindTransit,
		DepartureTime:      raw.DepartureTime,
		ArrivalTime:        raw.ArrivalTime,
		TravelTimeMins:     mins,
		TransportationType: transportationType,
		LineID:             raw.LineID,
		DestinationName:    raw.Destination,
		DepartureStop:      departure,
		ArrivalStop:        arrival,
		LineName:           raw.LineName,
		Color:              raw.LineColour,
	}, nil
}

// parseRemark accepts either a bare string or an object with a Header.
func parseRemark(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Header string `json:"Header"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Header != "" {
		return obj.Header
	}
	return string(raw)
}

func parseTravelProposal(raw *rawProposal) (domain.TravelProposal, error) {
	total, err := requireString("TravelProposal", "TotalTravelTime", raw.TotalTravelTime)
	if err != nil {
		return domain.TravelProposal{}, err
	}
	mins, err := parseDuration(total)
	if err != nil {
		return domain.TravelProposal{}, err
	}

	remarks := make([]string, 0, len(raw.Remarks))
	for _, r := range raw.Remarks {
		remarks = append(remarks, parseRemark(r))
	}

	stages := make([]domain.TravelStage, 0, len(raw.Stages))
	for i := range raw.Stages {
		stage, err := parseStage(&raw.Stages[i])
		if err != nil {
			return domain.TravelProposal{}, err
		}
		stages = append(stages, stage)
	}

	return domain.TravelProposal{
		DepartureTime:  raw.DepartureTime,
		ArrivalTime:    raw.ArrivalTime,
		TravelTimeMins: mins,
		Remarks:        remarks,
		Zones:          []string{},
		Stages:         stages,
	}, nil
}

func parseTravelPlan(raw *rawTravelResponse) ([]domain.TravelProposal, error) {
	proposals := make([]domain.TravelProposal, 0, len(raw.TravelProposals))
	for i := range raw.TravelProposals {
		proposal, err := parseTravelProposal(&raw.TravelProposals[i])
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, nil
}

func parseStreetHouses(raw *rawStreet) ([]domain.House, error) {
	streetID, err := requireInt("Street", "ID", raw.ID)
	if err != nil {
		return nil, err
	}
	streetName, err := requireString("Street", "Name", raw.Name)
	if err != nil {
		return nil, err
	}

	houses := make([]domain.House, 0, len(raw.Houses))
	for _, h := range raw.Houses {
		name, err := requireString("House", "Name", h.Name)
		if err != nil {
			return nil, err
		}
		geo, grid, err := requirePoint("House", "X/Y", h.X, h.Y)
		if err != nil {
			return nil, err
		}
		houses = append(houses, domain.House{
			StreetName:  strings.TrimSpace(streetName),
			StreetID:    streetID,
			District:    raw.District,
			Name:        strings.TrimSpace(name),
			GeoLocation: geo,
			UTMLocation: grid,
		})
	}
	return houses, nil
}
