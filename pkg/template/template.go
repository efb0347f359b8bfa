// Package template renders templated node parameters against the item being processed.
package template

import (
	"crypto/rand"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/flareops/flarenode/pkg/models"
)

// NeedsTemplating reports whether input contains template actions.
func NeedsTemplating(input string) bool {
	return strings.Contains(input, "{{")
}

// RenderForItem renders input with the item at index in scope:
//
//	{{ .json.address }}      field of the current item
//	{{ .index }}             position of the item in the batch
//	{{ .vars.network }}      workflow variable
//	{{ .env.FLARE_SYMBOL }}  environment variable
func RenderForItem(input string, item models.Item, index int, executionCtx *models.ExecutionContext) (string, error) {
	data := map[string]any{
		"json":      item.JSON,
		"index":     index,
		"variables": executionCtx.Variables,
		"vars":      executionCtx.Variables,
		"metadata":  executionCtx.Metadata,
		"env":       getEnvVars(),
		"execution": map[string]any{
			"id":          executionCtx.ID,
			"workflow_id": executionCtx.WorkflowID,
			"node_id":     executionCtx.NodeID,
		},
	}

	return Render(input, data)
}

// Render executes templateStr against data and returns the trimmed output.
// The output is never converted: parameters decode it according to their
// declared kind.
func Render(templateStr string, data any) (string, error) {
	tmpl, err := template.
		New("parameter").
		Option("missingkey=zero").
		Funcs(template.FuncMap{
			"now": func() string {
				return time.Now().UTC().Format(time.RFC3339)
			},
			"unix": func() int64 {
				return time.Now().Unix()
			},
			"rand": func(max int) int {
				if max <= 0 {
					return 0
				}
				num := make([]byte, 1)
				_, err := rand.Read(num)
				if err != nil {
					return 0
				}

				return int(num[0]) % max
			},
			"join": strings.Join,
		}).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template '%s': %w", templateStr, err)
	}

	var buf strings.Builder

	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template '%s': %w", templateStr, err)
	}

	result := strings.TrimSpace(buf.String())

	// missingkey=zero renders absent map keys as "<no value>"
	if result == "<no value>" {
		return "", nil
	}

	return result, nil
}

func getEnvVars() map[string]any {
	envMap := make(map[string]any)

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	return envMap
}
