// Package main provides the flarenode command.
package main

import (
	"log/slog"
	"strconv"

	"github.com/flareops/flarenode/pkg/eventbus"
	"github.com/flareops/flarenode/pkg/registry"
	"github.com/flareops/flarenode/pkg/services"
	"github.com/flareops/flarenode/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type API struct {
	logger   *slog.Logger
	registry *registry.Registry
	eventBus eventbus.EventBus
	stats    *services.Stats
	validate *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	registry *registry.Registry,
	eventBus eventbus.EventBus,
	stats *services.Stats,
) *API {
	return &API{
		logger:   logger,
		registry: registry,
		eventBus: eventBus,
		stats:    stats,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	var publisher eventbus.EventPublisher
	if a.eventBus != nil {
		publisher = a.eventBus
	}

	executionService := services.NewExecution(a.registry, publisher, a.logger)
	handlers := web.NewAPIHandlers(executionService, a.validate, a.registry)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Flare Node API")
	})

	n := app.Group("/nodes")
	n.Get("/", handlers.GetNodeTypes)
	n.Get("/:type", handlers.GetNodeType)
	n.Post("/:type/execute", handlers.ExecuteNode)

	app.Get("/health", handlers.HealthCheck)

	if a.stats != nil {
		app.Get("/stats", web.NewStatsHandler(a.stats))
	}

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	a.logger.Info("Listening", "port", port)

	return app.Listen(":" + strconv.Itoa(port))
}
