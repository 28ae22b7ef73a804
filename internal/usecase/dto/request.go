package dto

import (
	"time"

	"github.com/transit-graph/internal/domain"
)

// StopLinesRequest - фильтры линий остановки, применяются локально
type StopLinesRequest struct {
	TransportationTypes []string `json:"transportation_types,omitempty" validate:"omitempty,dive,transporttype"`
	LineIDs             []int    `json:"line_ids,omitempty" validate:"omitempty,dive,min=1"`
}

// StopRealtimeRequest - запрос прибытий в реальном времени
type StopRealtimeRequest struct {
	TransportTypes []string `json:"transport_types,omitempty" validate:"omitempty,dive,transporttype"`
	LineNames      []string `json:"line_names,omitempty" validate:"omitempty,dive,min=1"`
	Direction      string   `json:"direction,omitempty"`
	Limit          int      `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

// PlaceSearchRequest - поиск мест по имени
type PlaceSearchRequest struct {
	Name  string   `json:"name" validate:"required,min=1"`
	Types []string `json:"types,omitempty" validate:"omitempty,dive,placetype"`
}

// ClosestStopsRequest - ближайшие остановки к точке
type ClosestStopsRequest struct {
	Location    domain.LocationInput `json:"location"`
	MaxDistance *int                 `json:"max_distance,omitempty" validate:"omitempty,min=1,max=10000"` // meters
}

// AreaStopsRequest - остановки в прямоугольнике
type AreaStopsRequest struct {
	SW domain.LocationInput `json:"sw"`
	NE domain.LocationInput `json:"ne"`
}

// TravelPlanRequest - запрос к планировщику поездок
type TravelPlanRequest struct {
	Origin      domain.PlannerLocationInput `json:"origin"`
	Destination domain.PlannerLocationInput `json:"destination"`
	Time        *time.Time                  `json:"time,omitempty"`
	IsAfter     *bool                       `json:"is_after,omitempty"`
}
