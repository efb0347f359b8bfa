package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	cli "github.com/urfave/cli/v3"
)

func OperationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "operations",
		Aliases: []string{"ops"},
		Usage:   "List resources, operations and their parameters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "resource",
				Usage: "Only list operations of this resource",
			},
		},
		Action: func(_ context.Context, command *cli.Command) error {
			w := command.Writer
			if w == nil {
				w = os.Stdout
			}

			filter := command.String("resource")
			if filter != "" {
				if _, ok := flarenetwork.LookupResource(filter); !ok {
					return &flarenetwork.ConfigurationError{Resource: filter, Err: flarenetwork.ErrUnsupportedResource}
				}
			}

			for _, r := range flarenetwork.Resources() {
				if filter != "" && r.Name != filter {
					continue
				}

				printResource(w, r)
			}

			return nil
		},
	}
}

func printResource(w io.Writer, r flarenetwork.Resource) {
	fmt.Fprintf(w, "%s (%s, auth: %s)\n", r.Name, r.DisplayName, r.Auth)

	for _, op := range r.Operations {
		fmt.Fprintf(w, "  %-26s %-4s %s\n", op.Name, op.Method, op.Description)

		for _, p := range op.Params {
			var attrs []string
			if p.Required {
				attrs = append(attrs, "required")
			}

			if p.Default != nil && p.Default != "" && p.Default != 0.0 {
				attrs = append(attrs, fmt.Sprintf("default %v", p.Default))
			}

			if len(p.Options) > 0 {
				attrs = append(attrs, "one of "+strings.Join(p.Options, "|"))
			}

			fmt.Fprintf(w, "      --%s %s", p.Name, p.Kind)

			if len(attrs) > 0 {
				fmt.Fprintf(w, " (%s)", strings.Join(attrs, ", "))
			}

			fmt.Fprintln(w)
		}
	}
}
