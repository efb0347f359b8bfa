// Package config loads batch definitions for the run command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/flareops/flarenode/pkg/models"
	"gopkg.in/yaml.v3"
)

var ErrNoItems = errors.New("batch file has an empty items list")

// BatchFile is a YAML (or JSON) batch definition:
//
//	resource: priceFeeds
//	operation: getPriceBySymbol
//	continue_on_fail: true
//	parameters:
//	  symbol: "{{ .json.symbol }}"
//	items:
//	  - symbol: FLR
//	  - symbol: SGB
type BatchFile struct {
	Resource       string           `yaml:"resource"`
	Operation      string           `yaml:"operation"`
	Parameters     map[string]any   `yaml:"parameters"`
	ContinueOnFail bool             `yaml:"continue_on_fail"`
	Items          []map[string]any `yaml:"items"`
}

// LoadBatchFile reads and decodes the batch definition at path.
func LoadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	var batch BatchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}

	if batch.Items != nil && len(batch.Items) == 0 {
		return nil, ErrNoItems
	}

	return &batch, nil
}

// NodeConfig returns the node configuration of the batch.
func (b *BatchFile) NodeConfig() models.NodeConfig {
	params := b.Parameters
	if params == nil {
		params = map[string]any{}
	}

	return models.NodeConfig{
		Resource:       b.Resource,
		Operation:      b.Operation,
		Parameters:     params,
		ContinueOnFail: b.ContinueOnFail,
	}
}

// ModelItems converts the batch items. A batch without items yields nil.
func (b *BatchFile) ModelItems() []models.Item {
	if b.Items == nil {
		return nil
	}

	items := make([]models.Item, 0, len(b.Items))
	for _, obj := range b.Items {
		if obj == nil {
			obj = map[string]any{}
		}

		items = append(items, models.Item{JSON: obj})
	}

	return items
}
