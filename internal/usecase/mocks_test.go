package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/transit-graph/internal/domain"
)

type MockTransitRepository struct {
	mock.Mock
}

func (m *MockTransitRepository) GetStop(ctx context.Context, id int) (*domain.Stop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stop), args.Error(1)
}

func (m *MockTransitRepository) GetLine(ctx context.Context, id int) (*domain.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockTransitRepository) GetLinesByStopID(ctx context.Context, stopID int) ([]domain.Line, error) {
	args := m.Called(ctx, stopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Line), args.Error(1)
}

func (m *MockTransitRepository) GetStopsByLineID(ctx context.Context, lineID int) ([]domain.Stop, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

func (m *MockTransitRepository) GetStopVisits(ctx context.Context, stopID int, filter domain.VisitFilter) ([]domain.RealtimeVisit, error) {
	args := m.Called(ctx, stopID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RealtimeVisit), args.Error(1)
}

func (m *MockTransitRepository) GetPlacesByName(ctx context.Context, name string, types []domain.PlaceType) ([]domain.Place, error) {
	args := m.Called(ctx, name, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockTransitRepository) GetClosestStops(ctx context.Context, point domain.UTMLocation, maxDistance *int) ([]domain.Stop, error) {
	args := m.Called(ctx, point, maxDistance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

func (m *MockTransitRepository) GetStopsInArea(ctx context.Context, sw, ne domain.UTMLocation) ([]domain.Stop, error) {
	args := m.Called(ctx, sw, ne)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

func (m *MockTransitRepository) GetTravelPlan(ctx context.Context, query domain.TravelQuery) ([]domain.TravelProposal, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelProposal), args.Error(1)
}

func (m *MockTransitRepository) GetStreetHouses(ctx context.Context, streetID int) ([]domain.House, error) {
	args := m.Called(ctx, streetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.House), args.Error(1)
}
