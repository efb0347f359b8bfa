// Package web provides the REST API for listing and executing nodes.
package web

import (
	"net/http"
	"time"

	"github.com/flareops/flarenode/pkg/registry"
	"github.com/flareops/flarenode/pkg/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type APIHandlers struct {
	executionService *services.Execution
	validator        *validator.Validate
	registry         *registry.Registry
}

func NewAPIHandlers(
	executionService *services.Execution,
	validator *validator.Validate,
	registry *registry.Registry,
) *APIHandlers {
	return &APIHandlers{
		executionService: executionService,
		validator:        validator,
		registry:         registry,
	}
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	registryCheck, regOk := h.registry.HealthCheck()

	status := "unhealthy"
	message := "Flare node API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if regOk {
		status = "healthy"
		message = "Flare node API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"registry": registryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

func (h *APIHandlers) GetNodeTypes(c fiber.Ctx) error {
	factories := h.registry.GetAvailableNodes()

	nodes := make([]NodeTypeResponse, 0, len(factories))
	for _, f := range factories {
		nodes = append(nodes, TransformNodeType(f, false))
	}

	return c.JSON(fiber.Map{
		"nodes":       nodes,
		"total_count": len(nodes),
	})
}

func (h *APIHandlers) GetNodeType(c fiber.Ctx) error {
	nodeType := c.Params("type")

	factory, ok := h.registry.GetNodeFactory(nodeType)
	if !ok {
		return notFound(c, "node type not found: "+nodeType)
	}

	return c.JSON(TransformNodeType(factory, true))
}

func (h *APIHandlers) ExecuteNode(c fiber.Ctx) error {
	nodeType := c.Params("type")

	var req ExecuteNodeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.executionService.Run(c.Context(), &services.ExecuteRequest{
		NodeType:   nodeType,
		NodeID:     req.NodeID,
		WorkflowID: req.WorkflowID,
		Config:     req.Config(),
		Items:      req.Items,
		Variables:  req.Variables,
	})
	if err != nil {
		var partial []any
		if result != nil {
			partial = make([]any, 0, len(result.Records))
			for _, r := range result.Records {
				partial = append(partial, r)
			}
		}

		return handleServiceError(c, err, partial)
	}

	return c.JSON(transformResult(result))
}
