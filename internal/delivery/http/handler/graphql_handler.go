package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/pkg/utils"
	"go.uber.org/zap"
)

// GraphQLRequest - тело запроса к /graphql
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLHandler - исполняет запросы к схеме транспортного графа
type GraphQLHandler struct {
	schema graphql.Schema
	logger *zap.Logger
}

// NewGraphQLHandler - создание нового GraphQLHandler
func NewGraphQLHandler(schema graphql.Schema, logger *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		logger: logger,
	}
}

// Query godoc
// @Summary GraphQL запрос
// @Description Ошибки полей возвращаются в errors с кодом в extensions.code, HTTP статус при этом 200
// @Tags GraphQL
// @Accept json
// @Produce json
// @Param request body GraphQLRequest true "query, variables, operationName"
// @Success 200 {object} graphql.Result
// @Failure 400 {object} utils.ErrorResponse
// @Router /graphql [post]
func (h *GraphQLHandler) Query(c *fiber.Ctx) error {
	var req GraphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}
	if req.Query == "" {
		return utils.SendError(c, errors.InvalidRequest(map[string]interface{}{"query": "required"}))
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})

	if len(result.Errors) > 0 {
		h.logger.Debug("GraphQL query finished with errors",
			zap.String("operation", req.OperationName),
			zap.Int("errors", len(result.Errors)))
	}

	return c.JSON(result)
}
