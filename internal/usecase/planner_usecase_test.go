package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/usecase/dto"
)

func TestPlannerUseCase_PlanTravel(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit time and direction", func(t *testing.T) {
		at := time.Date(2015, 12, 10, 17, 30, 0, 0, time.UTC)
		isAfter := false
		repo := &MockTransitRepository{}
		repo.On("GetTravelPlan", ctx, domain.TravelQuery{
			Origin:      domain.PlannerLocation{Kind: domain.PlannerLocationStop, ID: "3010011"},
			Destination: domain.PlannerLocation{Kind: domain.PlannerLocationPoint, Point: domain.UTMLocation{X: 598000, Y: 6643000}},
			Time:        at,
			IsAfter:     false,
		}).Return([]domain.TravelProposal{{TravelTimeMins: 25}}, nil)

		uc := usecase.NewPlannerUseCase(repo, zap.NewNop())
		proposals, err := uc.PlanTravel(ctx, dto.TravelPlanRequest{
			Origin:      domain.PlannerLocationInput{Stop: &domain.IDInput{ID: "3010011"}},
			Destination: domain.PlannerLocationInput{UTM: &domain.UTMLocationInput{X: 598000, Y: 6643000}},
			Time:        &at,
			IsAfter:     &isAfter,
		})
		require.NoError(t, err)
		require.Len(t, proposals, 1)
		assert.Equal(t, 25, proposals[0].TravelTimeMins)
		repo.AssertExpectations(t)
	})

	t.Run("defaults", func(t *testing.T) {
		before := time.Now()
		repo := &MockTransitRepository{}
		repo.On("GetTravelPlan", ctx, mock.MatchedBy(func(q domain.TravelQuery) bool {
			return q.IsAfter && !q.Time.Before(before) && q.Origin.Kind == domain.PlannerLocationArea
		})).Return([]domain.TravelProposal{}, nil)

		uc := usecase.NewPlannerUseCase(repo, zap.NewNop())
		_, err := uc.PlanTravel(ctx, dto.TravelPlanRequest{
			Origin:      domain.PlannerLocationInput{Area: &domain.IDInput{ID: "1000013"}},
			Destination: domain.PlannerLocationInput{Stop: &domain.IDInput{ID: "3010011"}},
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid origin", func(t *testing.T) {
		repo := &MockTransitRepository{}
		uc := usecase.NewPlannerUseCase(repo, zap.NewNop())

		_, err := uc.PlanTravel(ctx, dto.TravelPlanRequest{
			Destination: domain.PlannerLocationInput{Stop: &domain.IDInput{ID: "3010011"}},
		})
		assert.ErrorIs(t, err, errors.ErrInvalidPlannerLocation)

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.True(t, appErr.IsClientError())
		repo.AssertNotCalled(t, "GetTravelPlan", mock.Anything, mock.Anything)
	})
}
