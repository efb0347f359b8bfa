package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flareops/flarenode/pkg/cmd"
	flareconfig "github.com/flareops/flarenode/pkg/config"
	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/log"
	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	"github.com/flareops/flarenode/pkg/services"
	cli "github.com/urfave/cli/v3"
)

func RunCommand() *cli.Command {
	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Execute one batch and print the output records as JSON",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "batch",
				Aliases: []string{"f"},
				Usage:   "YAML or JSON batch file with resource, operation, parameters, continue_on_fail and items",
			},
			&cli.StringFlag{
				Name:  "resource",
				Usage: "Resource (priceFeeds, delegation, stateConnector, syntheticAssets, networkInfo)",
			},
			&cli.StringFlag{
				Name:  "operation",
				Usage: "Operation of the resource, see the operations command",
			},
			&cli.StringFlag{
				Name:  "params",
				Usage: `Operation parameters as a JSON object, e.g. {"symbols": "FLR,SGB"}`,
			},
			&cli.StringFlag{
				Name:  "input",
				Usage: `JSON array of input items, read from a file or "-" for stdin. Defaults to one empty item`,
			},
			&cli.BoolFlag{
				Name:  "continue-on-fail",
				Usage: "Emit {\"error\": message} records for failed items instead of stopping",
			},
		}, clientFlags()...),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"), command.String("log-format"))

			logger := log.WithModule("run")

			config, items, err := batchFromCommand(command)
			if err != nil {
				return err
			}

			client := flare.NewClient(
				flare.WithTimeout(requestTimeout(command)),
				flare.WithLogger(log.WithModule("flare-client")),
			)

			registry, err := cmd.NewRegistry(logger, client, credentialProvider(command), "", dispatcherOptions(command)...)
			if err != nil {
				return err
			}

			result, runErr := services.NewExecution(registry, nil, logger).Run(ctx, &services.ExecuteRequest{
				NodeType: flarenetwork.NodeType,
				NodeID:   "cli",
				Config:   config.Map(),
				Items:    items,
			})

			if result != nil {
				if err := writeRecords(command.Writer, result.Records); err != nil {
					return err
				}
			}

			return runErr
		},
	}
}

var errMissingSelector = errors.New("--resource and --operation are required without a --batch file")

// batchFromCommand builds the node config and items from the optional batch
// file, then applies the flags set on the command line over it.
func batchFromCommand(command *cli.Command) (models.NodeConfig, []models.Item, error) {
	config := models.NodeConfig{Parameters: map[string]any{}}

	var items []models.Item

	if path := command.String("batch"); path != "" {
		batch, err := flareconfig.LoadBatchFile(path)
		if err != nil {
			return config, nil, err
		}

		config = batch.NodeConfig()
		items = batch.ModelItems()
	}

	if command.IsSet("resource") {
		config.Resource = command.String("resource")
	}

	if command.IsSet("operation") {
		config.Operation = command.String("operation")
	}

	if command.IsSet("continue-on-fail") {
		config.ContinueOnFail = command.Bool("continue-on-fail")
	}

	if command.IsSet("params") {
		var params map[string]any
		if err := json.Unmarshal([]byte(command.String("params")), &params); err != nil {
			return config, nil, fmt.Errorf("invalid --params: %w", err)
		}

		config.Parameters = params
	}

	if command.IsSet("input") {
		var err error

		items, err = readItems(command.String("input"), command.Reader)
		if err != nil {
			return config, nil, err
		}
	}

	if config.Resource == "" || config.Operation == "" {
		return config, nil, errMissingSelector
	}

	return config, items, nil
}

// readItems decodes a JSON array of objects into items. Each object is the
// item's JSON content.
func readItems(path string, stdin io.Reader) ([]models.Item, error) {
	if path == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)

	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}

		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("input must be a JSON array of objects: %w", err)
	}

	items := make([]models.Item, 0, len(objects))
	for _, obj := range objects {
		items = append(items, models.Item{JSON: obj})
	}

	return items, nil
}

func writeRecords(w io.Writer, records []models.OutputRecord) error {
	if w == nil {
		w = os.Stdout
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(records)
}
