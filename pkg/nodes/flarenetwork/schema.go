package flarenetwork

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidConfig = errors.New("invalid node configuration")

// ConfigSchema returns the JSON schema of the node configuration. The
// "x-operations" extension lists every operation with its parameters.
func ConfigSchema() map[string]any {
	resources := Resources()

	names := make([]string, 0, len(resources))
	conditions := make([]any, 0, len(resources))
	operations := make(map[string]any, len(resources))

	for _, r := range resources {
		names = append(names, r.Name)

		opNames := make([]string, 0, len(r.Operations))
		opDocs := make([]map[string]any, 0, len(r.Operations))

		for _, op := range r.Operations {
			opNames = append(opNames, op.Name)
			opDocs = append(opDocs, operationDoc(op))
		}

		conditions = append(conditions, map[string]any{
			"if": map[string]any{
				"properties": map[string]any{"resource": map[string]any{"const": r.Name}},
			},
			"then": map[string]any{
				"properties": map[string]any{"operation": map[string]any{"enum": opNames}},
			},
		})

		operations[r.Name] = map[string]any{
			"displayName": r.DisplayName,
			"auth":        r.Auth.String(),
			"operations":  opDocs,
		}
	}

	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"resource": map[string]any{
				"type":        "string",
				"description": "API category to call",
				"enum":        names,
				"default":     ResourcePriceFeeds,
			},
			"operation": map[string]any{
				"type":        "string",
				"description": "Operation of the selected resource. Applies to every item of the batch",
			},
			"parameters": map[string]any{
				"type":        "object",
				"description": "Operation parameters. String values support templating with {{ .json.field }} against each input item",
				"examples": []map[string]any{
					{"symbols": "FLR,SGB"},
					{"address": "{{ .json.address }}"},
				},
			},
			"continue_on_fail": map[string]any{
				"type":        "boolean",
				"description": "Emit {\"error\": message} for failed items instead of aborting the batch",
				"default":     false,
			},
		},
		"required":     []string{"resource", "operation"},
		"allOf":        conditions,
		"x-operations": operations,
	}
}

func operationDoc(op Operation) map[string]any {
	params := make([]map[string]any, 0, len(op.Params))

	for _, p := range op.Params {
		doc := map[string]any{
			"name":        p.Name,
			"displayName": p.DisplayName,
			"type":        string(p.Kind),
			"required":    p.Required,
			"default":     p.Default,
			"description": p.Description,
		}
		if len(p.Options) > 0 {
			doc["options"] = p.Options
		}

		params = append(params, doc)
	}

	return map[string]any{
		"name":        op.Name,
		"displayName": op.DisplayName,
		"description": op.Description,
		"method":      op.Method,
		"parameters":  params,
	}
}

// ValidateConfig checks a node configuration. Unknown resources and
// operations yield a ConfigurationError; other schema violations are wrapped
// in ErrInvalidConfig.
func ValidateConfig(config map[string]any) error {
	resource, _ := config["resource"].(string)
	operation, _ := config["operation"].(string)

	if _, _, err := Lookup(resource, operation); err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewGoLoader(ConfigSchema())
	dataLoader := gojsonschema.NewGoLoader(config)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !result.Valid() {
		var errs []string
		for _, e := range result.Errors() {
			errs = append(errs, e.String())
		}

		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
