package repository

import (
	"context"

	"github.com/transit-graph/internal/domain"
)

// TransitRepository определяет методы получения нормализованных данных upstream API
type TransitRepository interface {
	// GetStop возвращает остановку по ID
	GetStop(ctx context.Context, id int) (*domain.Stop, error)

	// GetLine возвращает линию по ID
	GetLine(ctx context.Context, id int) (*domain.Line, error)

	// GetLinesByStopID возвращает линии, обслуживающие остановку
	GetLinesByStopID(ctx context.Context, stopID int) ([]domain.Line, error)

	// GetStopsByLineID возвращает остановки линии
	GetStopsByLineID(ctx context.Context, lineID int) ([]domain.Stop, error)

	// GetStopVisits возвращает прибытия в реальном времени, с фильтрами по типу транспорта и имени линии
	GetStopVisits(ctx context.Context, stopID int, filter domain.VisitFilter) ([]domain.RealtimeVisit, error)

	// GetPlacesByName ищет места по имени; пустой types означает все типы
	GetPlacesByName(ctx context.Context, name string, types []domain.PlaceType) ([]domain.Place, error)

	// GetClosestStops возвращает ближайшие к точке остановки
	GetClosestStops(ctx context.Context, point domain.UTMLocation, maxDistance *int) ([]domain.Stop, error)

	// GetStopsInArea возвращает остановки внутри прямоугольника sw/ne
	GetStopsInArea(ctx context.Context, sw, ne domain.UTMLocation) ([]domain.Stop, error)

	// GetTravelPlan возвращает варианты поездки между двумя точками
	GetTravelPlan(ctx context.Context, query domain.TravelQuery) ([]domain.TravelProposal, error)

	// GetStreetHouses возвращает дома улицы
	GetStreetHouses(ctx context.Context, streetID int) ([]domain.House, error)
}
