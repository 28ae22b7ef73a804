package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/transit-graph/internal/config"
	"github.com/transit-graph/internal/delivery/http/handler"
	"github.com/transit-graph/internal/delivery/http/middleware"
	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/pkg/utils"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	stopHandler    *handler.StopHandler
	lineHandler    *handler.LineHandler
	placeHandler   *handler.PlaceHandler
	plannerHandler *handler.PlannerHandler
	graphqlHandler *handler.GraphQLHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	stopHandler *handler.StopHandler,
	lineHandler *handler.LineHandler,
	placeHandler *handler.PlaceHandler,
	plannerHandler *handler.PlannerHandler,
	graphqlHandler *handler.GraphQLHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Graph",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		stopHandler:    stopHandler,
		lineHandler:    lineHandler,
		placeHandler:   placeHandler,
		plannerHandler: plannerHandler,
		graphqlHandler: graphqlHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Post("/graphql", s.graphqlHandler.Query)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Stop routes
	api.Post("/stops/closest", s.placeHandler.GetClosestStops)
	api.Post("/stops/area", s.placeHandler.GetAreaStops)
	api.Get("/stops/:id", s.stopHandler.GetStop)
	api.Get("/stops/:id/lines", s.stopHandler.GetStopLines)
	api.Get("/stops/:id/realtime", s.stopHandler.GetStopRealtime)
	api.Get("/stops/:id/overview", s.stopHandler.GetStopOverview)

	// Line routes
	api.Get("/lines/:id", s.lineHandler.GetLine)
	api.Get("/lines/:id/stops", s.lineHandler.GetLineStops)

	// Place routes
	api.Get("/places", s.placeHandler.SearchPlaces)
	api.Get("/streets/:id/houses", s.placeHandler.GetStreetHouses)

	// Planner
	api.Post("/travel/plan", s.plannerHandler.PlanTravel)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, 405, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			code = fiberErr.Code
		} else if appErr, ok := errors.As(err); ok {
			code = appErr.StatusCode
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return utils.SendError(c, err)
	}
}
