package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transit-graph/internal/pkg/utils"
	"github.com/transit-graph/internal/pkg/validator"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlannerHandler - обработчик планировщика поездок
type PlannerHandler struct {
	plannerUC *usecase.PlannerUseCase
	logger    *zap.Logger
}

// NewPlannerHandler - создание нового PlannerHandler
func NewPlannerHandler(plannerUC *usecase.PlannerUseCase, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
		logger:    logger,
	}
}

// PlanTravel godoc
// @Summary Планирование поездки
// @Description Точки отправления и назначения задаются остановкой, районом, UTM или lat/lng (в этом приоритете).
// @Description time - время отправления в RFC3339, по умолчанию сейчас; is_after по умолчанию true.
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body dto.TravelPlanRequest true "Параметры поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.TravelPlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/travel/plan [post]
func (h *PlannerHandler) PlanTravel(c *fiber.Ctx) error {
	var req dto.TravelPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	proposals, err := h.plannerUC.PlanTravel(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TravelPlanResponse{Proposals: proposals}, &utils.Meta{
		Total: len(proposals),
	})
}
