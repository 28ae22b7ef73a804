package dto

import (
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/pkg/errors"
)

// DestinationView - направление линии с производными полями
type DestinationView struct {
	StopID             int                       `json:"stop_id"`
	LineID             int                       `json:"line_id"`
	Name               string                    `json:"name"`
	DestinationName    string                    `json:"destination_name"`
	Color              string                    `json:"color"`
	TransportationType domain.TransportationType `json:"transportation_type"`
	Visits             []domain.RealtimeVisit    `json:"visits"`
	Deviations         []domain.Deviation        `json:"deviations"`
}

// PlatformView - платформа с направлениями и отклонениями
type PlatformView struct {
	Name         string                 `json:"name"`
	Visits       []domain.RealtimeVisit `json:"visits"`
	Destinations []DestinationView      `json:"destinations"`
	Deviations   []domain.Deviation     `json:"deviations"`
}

// RealtimeResponse - все производные представления прибытий остановки
type RealtimeResponse struct {
	Visits       []domain.RealtimeVisit `json:"visits"`
	Platforms    []PlatformView         `json:"platforms"`
	Destinations []DestinationView      `json:"destinations"`
	Deviations   []domain.Deviation     `json:"deviations"`
}

// StopOverviewResponse collects independently fetched parts of a stop.
// A failed part is nil and its error is reported under the part's name.
type StopOverviewResponse struct {
	Stop     *domain.Stop                `json:"stop"`
	Lines    []domain.Line               `json:"lines"`
	Realtime *RealtimeResponse           `json:"realtime"`
	Errors   map[string]*errors.AppError `json:"errors,omitempty"`
}

// NearbyStop - остановка рядом с POI с временем пешком
type NearbyStop struct {
	WalkingTimeMins *int        `json:"walking_time_mins"`
	Stop            domain.Stop `json:"stop"`
}

// TravelPlanResponse - ответ планировщика
type TravelPlanResponse struct {
	Proposals []domain.TravelProposal `json:"proposals"`
}
