package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-graph/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отдает AppError из цепочки ошибок; все остальное - 500
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		code := errors.CodeInvalidRequest
		if fiberErr.Code == fiber.StatusNotFound {
			code = errors.CodeNotFound
		}
		return c.Status(fiberErr.Code).JSON(ErrorResponse{
			Error: errors.New(code, fiberErr.Message, fiberErr.Code),
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
