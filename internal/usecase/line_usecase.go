package usecase

import (
	"context"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	"go.uber.org/zap"
)

type LineUseCase struct {
	transitRepo repository.TransitRepository
	logger      *zap.Logger
}

func NewLineUseCase(transitRepo repository.TransitRepository, logger *zap.Logger) *LineUseCase {
	return &LineUseCase{
		transitRepo: transitRepo,
		logger:      logger,
	}
}

func (uc *LineUseCase) GetLine(ctx context.Context, id int) (*domain.Line, error) {
	line, err := uc.transitRepo.GetLine(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get line", zap.Int("line_id", id), zap.Error(err))
		return nil, err
	}
	return line, nil
}

// GetLineStops - остановки, обслуживаемые линией
func (uc *LineUseCase) GetLineStops(ctx context.Context, id int) ([]domain.Stop, error) {
	stops, err := uc.transitRepo.GetStopsByLineID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get stops for line", zap.Int("line_id", id), zap.Error(err))
		return nil, err
	}
	return stops, nil
}
