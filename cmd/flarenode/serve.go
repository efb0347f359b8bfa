package main

import (
	"context"
	"fmt"

	"github.com/flareops/flarenode/pkg/cmd"
	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/log"
	"github.com/flareops/flarenode/pkg/otelhelper"
	"github.com/flareops/flarenode/pkg/services"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 9092

func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the node API",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus type (gochannel, kafka)",
				Value:   cmd.EventBusGoChannel,
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.StringFlag{
				Name:    "plugins-path",
				Usage:   "Path to the directory containing node plugins",
				Sources: cli.EnvVars("PLUGINS_PATH"),
			},
			&cli.BoolFlag{
				Name:    "otel",
				Usage:   "Export traces over OTLP/HTTP",
				Sources: cli.EnvVars("OTEL_ENABLED"),
			},
		}, clientFlags()...),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"), command.String("log-format"))

			logger := log.WithModule("api")

			logger.InfoContext(ctx, "Initializing Flare node API")

			if command.Bool("otel") {
				tracerProvider, err := otelhelper.InitTracerProvider(ctx, "flarenode")
				if err != nil {
					return fmt.Errorf("failed to initialize tracer: %w", err)
				}

				defer func() {
					if err := tracerProvider.Shutdown(context.WithoutCancel(ctx)); err != nil {
						logger.ErrorContext(ctx, "Failed to shutdown tracer provider", "error", err)
					}
				}()
			}

			client := flare.NewClient(
				flare.WithTimeout(requestTimeout(command)),
				flare.WithLogger(log.WithModule("flare-client")),
			)

			registry, err := cmd.NewRegistry(
				logger,
				client,
				credentialProvider(command),
				command.String("plugins-path"),
				dispatcherOptions(command)...,
			)
			if err != nil {
				return fmt.Errorf("failed to load node plugins: %w", err)
			}

			eventBus, err := cmd.NewEventBus(command.String("event-bus"), logger)
			if err != nil {
				return err
			}

			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			stats := services.NewStats(log.WithModule("stats"))
			if err := stats.Register(eventBus); err != nil {
				return fmt.Errorf("failed to register stats handlers: %w", err)
			}

			subscribeCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			if err := eventBus.Subscribe(subscribeCtx); err != nil {
				return fmt.Errorf("failed to subscribe to execution events: %w", err)
			}

			api := NewAPI(logger, registry, eventBus, stats)

			return api.Start(command.Int("port"))
		},
	}
}
