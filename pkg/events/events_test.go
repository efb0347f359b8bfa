package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	event := NewBaseEvent(NodeExecutionFinishedEvent, "wf-1")

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, NodeExecutionFinishedEvent, event.Type)
	assert.Equal(t, "wf-1", event.WorkflowID)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Second)
	assert.NotNil(t, event.Metadata)

	assert.NotEqual(t, event.ID, NewBaseEvent(NodeExecutionFinishedEvent, "wf-1").ID)
}

func TestNodeExecutionEvents_GetType(t *testing.T) {
	assert.Equal(t, NodeExecutionFinishedEvent, NodeExecutionFinished{}.GetType())
	assert.Equal(t, NodeExecutionFailedEvent, NodeExecutionFailed{}.GetType())
}

func TestNodeExecutionFailed_JSON(t *testing.T) {
	event := NodeExecutionFailed{
		BaseEvent:   NewBaseEvent(NodeExecutionFailedEvent, ""),
		ExecutionID: "exec-1",
		NodeID:      "prices",
		Resource:    "priceFeeds",
		Operation:   "getPriceBySymbol",
		ItemIndex:   2,
		ErrorKind:   "remote_api",
		Error:       "HTTP 404: symbol not found",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"type":"node.execution.failed"`)
	assert.Contains(t, string(data), `"item_index":2`)
	assert.Contains(t, string(data), `"error_kind":"remote_api"`)
	assert.NotContains(t, string(data), `"workflow_id"`)
}
