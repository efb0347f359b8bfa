// Package web provides HTTP request and response types for the node API.
package web

import (
	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/protocol"
)

// ExecuteNodeRequest is the body of POST /nodes/:type/execute.
type ExecuteNodeRequest struct {
	NodeID         string         `json:"node_id,omitempty"  validate:"omitempty,max=128"`
	WorkflowID     string         `json:"workflow_id,omitempty" validate:"omitempty,max=128"`
	Resource       string         `json:"resource"           validate:"required"`
	Operation      string         `json:"operation"          validate:"required"`
	Parameters     map[string]any `json:"parameters"`
	Items          []models.Item  `json:"items"              validate:"omitempty,max=1000"`
	ContinueOnFail bool           `json:"continue_on_fail"`
	Variables      map[string]any `json:"variables"`
}

// Config returns the node configuration carried by the request.
func (r ExecuteNodeRequest) Config() map[string]any {
	return models.NodeConfig{
		Resource:       r.Resource,
		Operation:      r.Operation,
		Parameters:     r.Parameters,
		ContinueOnFail: r.ContinueOnFail,
	}.Map()
}

// ExecuteNodeResponse is the result of a batch execution.
type ExecuteNodeResponse struct {
	ExecutionID string                `json:"execution_id"`
	NodeID      string                `json:"node_id"`
	Status      models.NodeStatus     `json:"status"`
	Records     []models.OutputRecord `json:"records"`
	FailedItems int                   `json:"failed_items"`
	DurationMs  int64                 `json:"duration_ms"`
}

// NodeTypeResponse describes a registered node type.
type NodeTypeResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema,omitempty"`
}

// TransformNodeType builds the response for a node factory. The schema is
// only included when withSchema is set.
func TransformNodeType(factory protocol.NodeFactory, withSchema bool) NodeTypeResponse {
	response := NodeTypeResponse{
		ID:          factory.ID(),
		Name:        factory.Name(),
		Description: factory.Description(),
	}

	if withSchema {
		response.Schema = factory.Schema()
	}

	return response
}

func transformResult(result *models.NodeResult) ExecuteNodeResponse {
	return ExecuteNodeResponse{
		ExecutionID: result.ExecutionID,
		NodeID:      result.NodeID,
		Status:      result.Status,
		Records:     result.Records,
		FailedItems: result.FailedItems,
		DurationMs:  result.Duration.Milliseconds(),
	}
}
