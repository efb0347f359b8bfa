package web

import (
	"context"
	"errors"
	"net"

	"github.com/flareops/flarenode/pkg/credentials"
	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	"github.com/flareops/flarenode/pkg/services"
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

// handleServiceError maps execution errors to problem responses. Records
// produced before a fail-fast abort are attached as "records".
func handleServiceError(c fiber.Ctx, err error, partial []any) error {
	switch {
	case services.IsValidationError(err):
		typ := "validation_error"
		if flarenetwork.IsConfigurationError(err) {
			typ = "configuration_error"
		}

		problem := problems.NewStatusProblem(400).
			WithInstance(c.Path()).
			WithType(typ).
			WithDetail(err.Error())

		return c.Status(fiber.StatusBadRequest).JSON(problem)

	case services.IsNotFoundError(err):
		return notFound(c, err.Error())

	case errors.Is(err, flarenetwork.ErrMissingParameter):
		return c.Status(fiber.StatusBadRequest).JSON(withRecords(
			problems.NewStatusProblem(400).
				WithInstance(c.Path()).
				WithType("parameter_error").
				WithDetail(err.Error()),
			partial,
		))

	case flare.IsRemoteAPIError(err):
		var remoteErr *flare.RemoteAPIError
		errors.As(err, &remoteErr)

		return c.Status(fiber.StatusBadGateway).JSON(withRecords(
			problems.NewStatusProblem(502).
				WithInstance(c.Path()).
				WithType("remote_api_error").
				WithDetail(err.Error()),
			partial,
			"remote_status", remoteErr.StatusCode,
			"remote_message", remoteErr.Message,
		))

	case isTimeout(err):
		return c.Status(fiber.StatusGatewayTimeout).JSON(withRecords(
			problems.NewStatusProblem(504).
				WithInstance(c.Path()).
				WithType("transport_error").
				WithDetail(err.Error()),
			partial,
		))

	case errors.Is(err, credentials.ErrNoAPIKey), errors.Is(err, flare.ErrUnknownBaseURL):
		problem := problems.NewStatusProblem(503).
			WithInstance(c.Path()).
			WithType("credentials_error").
			WithDetail(err.Error())

		return c.Status(fiber.StatusServiceUnavailable).JSON(problem)

	case errors.Is(err, services.ErrExecutionFailed):
		return c.Status(fiber.StatusBadGateway).JSON(withRecords(
			problems.NewStatusProblem(502).
				WithInstance(c.Path()).
				WithType("transport_error").
				WithDetail(err.Error()),
			partial,
		))

	default:
		problem := problems.NewStatusProblem(500).
			WithInstance(c.Path()).
			WithType("internal_error").
			WithError(err)

		return c.Status(fiber.StatusInternalServerError).JSON(problem)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

// withRecords flattens problem into a map and adds the partial records and
// any extra key/value pairs.
func withRecords(problem *problems.Problem, partial []any, extra ...any) fiber.Map {
	body := fiber.Map{
		"type":     problem.Type,
		"title":    problem.Title,
		"status":   problem.Status,
		"detail":   problem.Detail,
		"instance": problem.Instance,
		"records":  partial,
	}

	for i := 0; i+1 < len(extra); i += 2 {
		if key, ok := extra[i].(string); ok {
			body[key] = extra[i+1]
		}
	}

	return body
}
