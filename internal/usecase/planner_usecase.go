package usecase

import (
	"context"
	"time"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

type PlannerUseCase struct {
	transitRepo repository.TransitRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewPlannerUseCase(transitRepo repository.TransitRepository, logger *zap.Logger) *PlannerUseCase {
	return &PlannerUseCase{
		transitRepo: transitRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// PlanTravel resolves both planner locations and asks for travel proposals.
// Time defaults to now and IsAfter to true.
func (uc *PlannerUseCase) PlanTravel(ctx context.Context, req dto.TravelPlanRequest) ([]domain.TravelProposal, error) {
	origin, err := req.Origin.Resolve()
	if err != nil {
		return nil, err
	}
	destination, err := req.Destination.Resolve()
	if err != nil {
		return nil, err
	}

	query := domain.TravelQuery{
		Origin:      origin,
		Destination: destination,
		Time:        uc.now(),
		IsAfter:     true,
	}
	if req.Time != nil {
		query.Time = *req.Time
	}
	if req.IsAfter != nil {
		query.IsAfter = *req.IsAfter
	}

	proposals, err := uc.transitRepo.GetTravelPlan(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to get travel plan", zap.Error(err))
		return nil, err
	}
	return proposals, nil
}
