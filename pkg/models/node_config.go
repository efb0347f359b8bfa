package models

// NodeConfig is the configuration of a Flare Network node instance.
// Parameters hold literal values or templates rendered per item.
type NodeConfig struct {
	Resource       string         `json:"resource"         validate:"required"`
	Operation      string         `json:"operation"        validate:"required"`
	Parameters     map[string]any `json:"parameters"`
	ContinueOnFail bool           `json:"continue_on_fail"`
}

// ParseNodeConfig reads a NodeConfig from a generic config map.
func ParseNodeConfig(config map[string]any) NodeConfig {
	nc := NodeConfig{Parameters: map[string]any{}}

	nc.Resource, _ = config["resource"].(string)
	nc.Operation, _ = config["operation"].(string)
	nc.ContinueOnFail, _ = config["continue_on_fail"].(bool)

	if params, ok := config["parameters"].(map[string]any); ok {
		for k, v := range params {
			nc.Parameters[k] = v
		}
	}

	return nc
}

// Map returns the generic representation of the config.
func (c NodeConfig) Map() map[string]any {
	params := make(map[string]any, len(c.Parameters))
	for k, v := range c.Parameters {
		params[k] = v
	}

	return map[string]any{
		"resource":         c.Resource,
		"operation":        c.Operation,
		"parameters":       params,
		"continue_on_fail": c.ContinueOnFail,
	}
}
