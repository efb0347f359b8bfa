package web

import (
	"github.com/flareops/flarenode/pkg/services"
	"github.com/gofiber/fiber/v3"
)

type StatsResponse struct {
	Operations []services.OperationStats `json:"operations"`
}

// NewStatsHandler serves the execution counters collected by stats.
func NewStatsHandler(stats *services.Stats) fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.JSON(StatsResponse{Operations: stats.Snapshot()})
	}
}
