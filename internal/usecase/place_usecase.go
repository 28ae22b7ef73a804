package usecase

import (
	"context"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

type PlaceUseCase struct {
	transitRepo repository.TransitRepository
	logger      *zap.Logger
}

func NewPlaceUseCase(transitRepo repository.TransitRepository, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{
		transitRepo: transitRepo,
		logger:      logger,
	}
}

// SearchPlaces ищет места по имени с необязательным фильтром по типу
func (uc *PlaceUseCase) SearchPlaces(ctx context.Context, req dto.PlaceSearchRequest) ([]domain.Place, error) {
	types := make([]domain.PlaceType, 0, len(req.Types))
	for _, t := range req.Types {
		types = append(types, domain.PlaceType(t))
	}

	places, err := uc.transitRepo.GetPlacesByName(ctx, req.Name, types)
	if err != nil {
		uc.logger.Error("Failed to search places", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return places, nil
}

func (uc *PlaceUseCase) GetStreetHouses(ctx context.Context, streetID int) ([]domain.House, error) {
	houses, err := uc.transitRepo.GetStreetHouses(ctx, streetID)
	if err != nil {
		uc.logger.Error("Failed to get street houses", zap.Int("street_id", streetID), zap.Error(err))
		return nil, err
	}
	return houses, nil
}

// GetClosestStops normalizes the location to a grid point before asking upstream.
func (uc *PlaceUseCase) GetClosestStops(ctx context.Context, req dto.ClosestStopsRequest) ([]domain.Stop, error) {
	point, err := req.Location.ToUTM()
	if err != nil {
		return nil, err
	}

	stops, err := uc.transitRepo.GetClosestStops(ctx, point, req.MaxDistance)
	if err != nil {
		uc.logger.Error("Failed to get closest stops", zap.Int("x", point.X), zap.Int("y", point.Y), zap.Error(err))
		return nil, err
	}
	return stops, nil
}

func (uc *PlaceUseCase) GetAreaStops(ctx context.Context, req dto.AreaStopsRequest) ([]domain.Stop, error) {
	sw, err := req.SW.ToUTM()
	if err != nil {
		return nil, err
	}
	ne, err := req.NE.ToUTM()
	if err != nil {
		return nil, err
	}

	stops, err := uc.transitRepo.GetStopsInArea(ctx, sw, ne)
	if err != nil {
		uc.logger.Error("Failed to get stops in area", zap.Error(err))
		return nil, err
	}
	return stops, nil
}

// NearbyStops pairs each stop near a POI with its walking time.
func NearbyStops(poi *domain.POI) []dto.NearbyStop {
	nearby := make([]dto.NearbyStop, 0, len(poi.NearbyStops))
	for _, s := range poi.NearbyStops {
		nearby = append(nearby, dto.NearbyStop{WalkingTimeMins: s.WalkingTimeMins, Stop: s})
	}
	return nearby
}
