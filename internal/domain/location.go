package domain

import (
	"strconv"
	"strings"

	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/pkg/utm"
)

// GeoLocation - точка в WGS84
type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UTMLocation - точка в сетке UTM 32N, целые метры
type UTMLocation struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToUTM returns the grid representation of the point.
func (g GeoLocation) ToUTM() UTMLocation {
	x, y := utm.FromLatLon(g.Lat, g.Lng)
	return UTMLocation{X: x, Y: y}
}

// ToGeo returns the geographic representation of the point.
func (u UTMLocation) ToGeo() GeoLocation {
	lat, lng := utm.ToLatLon(float64(u.X), float64(u.Y))
	return GeoLocation{Lat: lat, Lng: lng}
}

// LocationFromUTM builds both representations of a point supplied on the grid.
func LocationFromUTM(x, y int) (GeoLocation, UTMLocation) {
	u := UTMLocation{X: x, Y: y}
	return u.ToGeo(), u
}

// GeoLocationInput - координаты, пришедшие от клиента в формате lat/lng
type GeoLocationInput struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// UTMLocationInput - координаты, пришедшие от клиента в формате UTM32
type UTMLocationInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LocationInput carries either a geographic or a grid point. When both are
// present the grid point wins, because it is what the upstream API consumes.
type LocationInput struct {
	GeoLocation *GeoLocationInput `json:"geoLocation,omitempty" validate:"omitempty"`
	UTMLocation *UTMLocationInput `json:"utmLocation,omitempty" validate:"omitempty"`
}

// ToUTM normalizes the input to a grid point.
func (l LocationInput) ToUTM() (UTMLocation, error) {
	switch {
	case l.UTMLocation != nil:
		return UTMLocation{X: int(l.UTMLocation.X), Y: int(l.UTMLocation.Y)}, nil
	case l.GeoLocation != nil:
		return GeoLocation{Lat: l.GeoLocation.Lat, Lng: l.GeoLocation.Lng}.ToUTM(), nil
	default:
		return UTMLocation{}, errors.ErrAmbiguousLocationInput
	}
}

// IDInput - ссылка на остановку или район по идентификатору
type IDInput struct {
	ID string `json:"id"`
}

// PlannerLocationInput is the four-way location accepted by the travel planner.
type PlannerLocationInput struct {
	Geo  *GeoLocationInput `json:"geo,omitempty" validate:"omitempty"`
	UTM  *UTMLocationInput `json:"utm,omitempty" validate:"omitempty"`
	Stop *IDInput          `json:"stop,omitempty"`
	Area *IDInput          `json:"area,omitempty"`
}

type PlannerLocationKind string

const (
	PlannerLocationStop  PlannerLocationKind = "stop"
	PlannerLocationArea  PlannerLocationKind = "area"
	PlannerLocationPoint PlannerLocationKind = "point"
)

// PlannerLocation - нормализованная точка для планировщика: либо id, либо UTM
type PlannerLocation struct {
	Kind  PlannerLocationKind
	ID    string
	Point UTMLocation
}

// Resolve picks the first set variant in the order stop, area, utm, geo.
// Stop and area ids must be numeric, as the upstream only accepts numeric place ids.
func (p PlannerLocationInput) Resolve() (PlannerLocation, error) {
	switch {
	case p.Stop != nil && strings.TrimSpace(p.Stop.ID) != "":
		return resolveID(PlannerLocationStop, p.Stop.ID)
	case p.Area != nil && strings.TrimSpace(p.Area.ID) != "":
		return resolveID(PlannerLocationArea, p.Area.ID)
	case p.UTM != nil || p.Geo != nil:
		point, err := LocationInput{GeoLocation: p.Geo, UTMLocation: p.UTM}.ToUTM()
		if err != nil {
			return PlannerLocation{}, err
		}
		return PlannerLocation{Kind: PlannerLocationPoint, Point: point}, nil
	default:
		return PlannerLocation{}, errors.ErrInvalidPlannerLocation
	}
}

func resolveID(kind PlannerLocationKind, raw string) (PlannerLocation, error) {
	id := strings.TrimSpace(raw)
	if _, err := strconv.Atoi(id); err != nil {
		return PlannerLocation{}, errors.ErrInvalidPlannerLocation.WithDetails(map[string]interface{}{
			string(kind): id,
		})
	}
	return PlannerLocation{Kind: kind, ID: id}, nil
}
