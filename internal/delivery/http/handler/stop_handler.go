package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transit-graph/internal/pkg/utils"
	"github.com/transit-graph/internal/pkg/validator"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

// StopHandler - обработчик запросов по остановкам
type StopHandler struct {
	stopUC *usecase.StopUseCase
	logger *zap.Logger
}

// NewStopHandler - создание нового StopHandler
func NewStopHandler(stopUC *usecase.StopUseCase, logger *zap.Logger) *StopHandler {
	return &StopHandler{
		stopUC: stopUC,
		logger: logger,
	}
}

// GetStop godoc
// @Summary Остановка по ID
// @Tags Stops
// @Produce json
// @Param id path int true "ID остановки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id} [get]
func (h *StopHandler) GetStop(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	stop, err := h.stopUC.GetStop(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stop, nil)
}

// GetStopLines godoc
// @Summary Линии, проходящие через остановку
// @Description Фильтры применяются локально после загрузки всех линий остановки
// @Tags Stops
// @Produce json
// @Param id path int true "ID остановки"
// @Param transportation_types query string false "Типы транспорта через запятую (Bus,Tram,Metro,...)"
// @Param line_ids query string false "ID линий через запятую"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Line}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id}/lines [get]
func (h *StopHandler) GetStopLines(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.StopLinesRequest
	req.TransportationTypes = queryList(c, "transportation_types")
	if req.LineIDs, err = queryIntList(c, "line_ids"); err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	lines, err := h.stopUC.GetStopLines(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, lines, &utils.Meta{
		Total: len(lines),
	})
}

// GetStopRealtime godoc
// @Summary Табло отправлений остановки
// @Description Визиты, сгруппированные по платформам и направлениям, и уникальные отклонения.
// @Description direction и limit применяются только к списку visits.
// @Tags Stops
// @Produce json
// @Param id path int true "ID остановки"
// @Param transport_types query string false "Типы транспорта через запятую"
// @Param line_names query string false "Названия линий через запятую"
// @Param direction query string false "Направление"
// @Param limit query int false "Максимум визитов"
// @Success 200 {object} utils.SuccessResponse{data=dto.RealtimeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id}/realtime [get]
func (h *StopHandler) GetStopRealtime(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.StopRealtimeRequest{
		TransportTypes: queryList(c, "transport_types"),
		LineNames:      queryList(c, "line_names"),
		Direction:      c.Query("direction"),
		Limit:          c.QueryInt("limit", 0),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stopUC.GetStopRealtime(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Visits),
	})
}

// GetStopOverview godoc
// @Summary Остановка, ее линии и табло одним запросом
// @Description Части загружаются параллельно; ошибка одной части попадает в errors, остальные отдаются
// @Tags Stops
// @Produce json
// @Param id path int true "ID остановки"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopOverviewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id}/overview [get]
func (h *StopHandler) GetStopOverview(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stopUC.GetStopOverview(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
