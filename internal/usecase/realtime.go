package usecase

import (
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/usecase/dto"
)

// DestinationViews groups visits by destination and adds color and deviations.
func DestinationViews(visits []domain.RealtimeVisit) []dto.DestinationView {
	groups := GroupVisitsByDestination(visits)
	views := make([]dto.DestinationView, 0, len(groups))
	for _, g := range groups {
		views = append(views, dto.DestinationView{
			StopID:             g.StopID,
			LineID:             g.LineID,
			Name:               g.Name,
			DestinationName:    g.DestinationName,
			Color:              DisplayColor(g.LineColour),
			TransportationType: g.TransportationType,
			Visits:             g.Visits,
			Deviations:         CollectUniqueDeviations(g.Visits),
		})
	}
	return views
}

// PlatformViews groups visits by platform with per-platform destinations and deviations.
func PlatformViews(visits []domain.RealtimeVisit) []dto.PlatformView {
	groups := GroupVisitsByPlatform(visits)
	views := make([]dto.PlatformView, 0, len(groups))
	for _, g := range groups {
		views = append(views, dto.PlatformView{
			Name:         g.Name,
			Visits:       g.Visits,
			Destinations: DestinationViews(g.Visits),
			Deviations:   CollectUniqueDeviations(g.Visits),
		})
	}
	return views
}

// BuildRealtime derives every realtime view from the full visit list.
// Direction and limit only narrow the plain visit list.
func BuildRealtime(visits []domain.RealtimeVisit, direction string, limit int) *dto.RealtimeResponse {
	return &dto.RealtimeResponse{
		Visits:       FilterVisits(visits, direction, limit),
		Platforms:    PlatformViews(visits),
		Destinations: DestinationViews(visits),
		Deviations:   CollectUniqueDeviations(visits),
	}
}

// DisplayColor prefixes a raw hex line colour with "#".
func DisplayColor(lineColour string) string {
	return "#" + lineColour
}
