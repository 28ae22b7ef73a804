package usecase

import (
	"context"
	"slices"

	"github.com/sourcegraph/conc"
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

type StopUseCase struct {
	transitRepo repository.TransitRepository
	logger      *zap.Logger
}

func NewStopUseCase(
	transitRepo repository.TransitRepository,
	logger *zap.Logger,
) *StopUseCase {
	return &StopUseCase{
		transitRepo: transitRepo,
		logger:      logger,
	}
}

func (uc *StopUseCase) GetStop(ctx context.Context, id int) (*domain.Stop, error) {
	stop, err := uc.transitRepo.GetStop(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get stop", zap.Int("stop_id", id), zap.Error(err))
		return nil, err
	}
	return stop, nil
}

// GetStopLines returns the lines serving a stop, filtered by transportation
// type and line id when those filters are set.
func (uc *StopUseCase) GetStopLines(ctx context.Context, id int, req dto.StopLinesRequest) ([]domain.Line, error) {
	types, err := ParseTransportationTypes(req.TransportationTypes)
	if err != nil {
		return nil, err
	}

	lines, err := uc.transitRepo.GetLinesByStopID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get lines for stop", zap.Int("stop_id", id), zap.Error(err))
		return nil, err
	}

	return FilterLines(lines, types, req.LineIDs), nil
}

// GetStopVisits fetches visits with the upstream filters, then applies direction and limit.
func (uc *StopUseCase) GetStopVisits(ctx context.Context, id int, req dto.StopRealtimeRequest) ([]domain.RealtimeVisit, error) {
	visits, err := uc.fetchVisits(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return FilterVisits(visits, req.Direction, req.Limit), nil
}

func (uc *StopUseCase) GetStopRealtime(ctx context.Context, id int, req dto.StopRealtimeRequest) (*dto.RealtimeResponse, error) {
	visits, err := uc.fetchVisits(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return BuildRealtime(visits, req.Direction, req.Limit), nil
}

func (uc *StopUseCase) fetchVisits(ctx context.Context, id int, req dto.StopRealtimeRequest) ([]domain.RealtimeVisit, error) {
	types, err := ParseTransportationTypes(req.TransportTypes)
	if err != nil {
		return nil, err
	}

	visits, err := uc.transitRepo.GetStopVisits(ctx, id, domain.VisitFilter{
		TransportTypes: types,
		LineNames:      req.LineNames,
	})
	if err != nil {
		uc.logger.Error("Failed to get stop visits", zap.Int("stop_id", id), zap.Error(err))
		return nil, err
	}
	return visits, nil
}

// GetStopOverview fetches the stop, its lines and its realtime data
// concurrently. Each part fails on its own; only when all three fail is
// the whole call an error.
func (uc *StopUseCase) GetStopOverview(ctx context.Context, id int) (*dto.StopOverviewResponse, error) {
	var (
		resp                         dto.StopOverviewResponse
		stopErr, linesErr, visitsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		resp.Stop, stopErr = uc.transitRepo.GetStop(ctx, id)
	})
	wg.Go(func() {
		resp.Lines, linesErr = uc.transitRepo.GetLinesByStopID(ctx, id)
	})
	wg.Go(func() {
		resp.Realtime, visitsErr = uc.GetStopRealtime(ctx, id, dto.StopRealtimeRequest{})
	})
	wg.Wait()

	if stopErr != nil && linesErr != nil && visitsErr != nil {
		uc.logger.Error("Failed to get stop overview", zap.Int("stop_id", id), zap.Error(stopErr))
		return nil, stopErr
	}

	for part, err := range map[string]error{"stop": stopErr, "lines": linesErr, "realtime": visitsErr} {
		if err == nil {
			continue
		}
		if resp.Errors == nil {
			resp.Errors = make(map[string]*errors.AppError)
		}
		resp.Errors[part] = toAppError(err)
		uc.logger.Warn("Stop overview part failed",
			zap.Int("stop_id", id),
			zap.String("part", part),
			zap.Error(err))
	}

	return &resp, nil
}

// ParseTransportationTypes converts names such as "Bus" or "AIRPORT_BUS" to the enum.
func ParseTransportationTypes(names []string) ([]domain.TransportationType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	types := make([]domain.TransportationType, 0, len(names))
	for _, name := range names {
		t, ok := domain.ParseTransportationType(name)
		if !ok {
			return nil, errors.InvalidRequest(map[string]interface{}{"transportation_type": name})
		}
		types = append(types, t)
	}
	return types, nil
}

// FilterLines keeps lines matching any of types and any of ids; an empty filter matches all.
func FilterLines(lines []domain.Line, types []domain.TransportationType, ids []int) []domain.Line {
	filtered := make([]domain.Line, 0, len(lines))
	for _, l := range lines {
		if len(types) > 0 && !slices.Contains(types, l.TransportationType) {
			continue
		}
		if len(ids) > 0 && !slices.Contains(ids, l.ID) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

func toAppError(err error) *errors.AppError {
	if appErr, ok := errors.As(err); ok {
		return appErr
	}
	return errors.ErrInternalServer.Wrap(err)
}
