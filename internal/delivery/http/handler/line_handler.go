package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transit-graph/internal/pkg/utils"
	"github.com/transit-graph/internal/usecase"
	"go.uber.org/zap"
)

// LineHandler - обработчик запросов по линиям
type LineHandler struct {
	lineUC *usecase.LineUseCase
	logger *zap.Logger
}

// NewLineHandler - создание нового LineHandler
func NewLineHandler(lineUC *usecase.LineUseCase, logger *zap.Logger) *LineHandler {
	return &LineHandler{
		lineUC: lineUC,
		logger: logger,
	}
}

// GetLine godoc
// @Summary Линия по ID
// @Tags Lines
// @Produce json
// @Param id path int true "ID линии"
// @Success 200 {object} utils.SuccessResponse{data=domain.Line}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id} [get]
func (h *LineHandler) GetLine(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	line, err := h.lineUC.GetLine(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, line, nil)
}

// GetLineStops godoc
// @Summary Остановки линии
// @Tags Lines
// @Produce json
// @Param id path int true "ID линии"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id}/stops [get]
func (h *LineHandler) GetLineStops(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	stops, err := h.lineUC.GetLineStops(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stops, &utils.Meta{
		Total: len(stops),
	})
}
