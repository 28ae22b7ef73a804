package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transit-graph/internal/pkg/utils"
	"github.com/transit-graph/internal/pkg/validator"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - поиск мест, улиц и остановок по координатам
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// SearchPlaces godoc
// @Summary Поиск мест по названию
// @Description Возвращает остановки, POI, районы и улицы. Фильтр по типу применяется локально.
// @Tags Places
// @Produce json
// @Param name query string true "Название или его часть"
// @Param type query string false "Типы мест через запятую (Stop,POI,Area,Street)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *PlaceHandler) SearchPlaces(c *fiber.Ctx) error {
	req := dto.PlaceSearchRequest{
		Name:  c.Query("name"),
		Types: queryList(c, "type"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	places, err := h.placeUC.SearchPlaces(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, places, &utils.Meta{
		Total: len(places),
	})
}

// GetStreetHouses godoc
// @Summary Дома на улице
// @Tags Places
// @Produce json
// @Param id path int true "ID улицы"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.House}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/streets/{id}/houses [get]
func (h *PlaceHandler) GetStreetHouses(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	houses, err := h.placeUC.GetStreetHouses(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, houses, &utils.Meta{
		Total: len(houses),
	})
}

// GetClosestStops godoc
// @Summary Ближайшие остановки к точке
// @Description Точка задается в lat/lng или UTM32; если указаны обе, используется UTM
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.ClosestStopsRequest true "Точка и радиус в метрах"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/closest [post]
func (h *PlaceHandler) GetClosestStops(c *fiber.Ctx) error {
	var req dto.ClosestStopsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stops, err := h.placeUC.GetClosestStops(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stops, &utils.Meta{
		Total: len(stops),
	})
}

// GetAreaStops godoc
// @Summary Остановки в прямоугольнике
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.AreaStopsRequest true "Юго-западный и северо-восточный углы"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/area [post]
func (h *PlaceHandler) GetAreaStops(c *fiber.Ctx) error {
	var req dto.AreaStopsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stops, err := h.placeUC.GetAreaStops(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stops, &utils.Meta{
		Total: len(stops),
	})
}
