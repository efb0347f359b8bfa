package main

import (
	"time"

	"github.com/flareops/flarenode/pkg/credentials"
	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	"github.com/flareops/flarenode/pkg/protocol"
	cli "github.com/urfave/cli/v3"
)

// clientFlags configure the Flare API client and its credentials.
func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "Flare API key. When empty, FLARE_API_KEY and FLARE_BASE_URL are read for every batch",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Flare API base URL used with --api-key (" + flare.BaseURLFlare + " or " + flare.BaseURLSongbird + ")",
			Value: flare.BaseURLFlare,
		},
		&cli.StringFlag{
			Name:    "credentials-file",
			Usage:   `JSON file {"apiKey": "...", "baseUrl": "..."} read for every batch`,
			Sources: cli.EnvVars("FLARE_CREDENTIALS_FILE"),
		},
		&cli.BoolFlag{
			Name:    "allow-custom-base-url",
			Usage:   "Accept base URLs other than the Flare and Songbird endpoints",
			Sources: cli.EnvVars("FLARE_ALLOW_CUSTOM_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Timeout of a single API request",
			Value:   flare.DefaultTimeout,
			Sources: cli.EnvVars("FLARE_TIMEOUT"),
		},
	}
}

func credentialProvider(command *cli.Command) protocol.CredentialProvider {
	if apiKey := command.String("api-key"); apiKey != "" {
		return credentials.NewStaticProvider(apiKey, command.String("base-url"))
	}

	if path := command.String("credentials-file"); path != "" {
		return credentials.NewFileProvider(path)
	}

	return credentials.EnvProvider{}
}

func dispatcherOptions(command *cli.Command) []flarenetwork.DispatcherOption {
	if command.Bool("allow-custom-base-url") {
		return []flarenetwork.DispatcherOption{flarenetwork.AllowCustomBaseURL()}
	}

	return nil
}

func requestTimeout(command *cli.Command) time.Duration {
	if d := command.Duration("timeout"); d > 0 {
		return d
	}

	return flare.DefaultTimeout
}
