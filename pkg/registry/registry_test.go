package registry

import (
	"context"
	"log/slog"
	"testing"

	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock node for testing
type mockNode struct {
	id string
}

func (m *mockNode) ID() string {
	return m.id
}

func (m *mockNode) Type() string {
	return "mock"
}

func (m *mockNode) Execute(_ context.Context, _ models.ExecutionContext, items []models.Item) ([]models.OutputRecord, error) {
	records := make([]models.OutputRecord, len(items))
	for i := range items {
		records[i] = models.OutputRecord{JSON: "ok", PairedItem: models.PairedItem{Item: i}}
	}

	return records, nil
}

type mockFactory struct{}

func (mockFactory) Create(_ context.Context, id string, _ map[string]any) (protocol.Node, error) {
	return &mockNode{id: id}, nil
}

func (mockFactory) ID() string             { return "mock" }
func (mockFactory) Name() string           { return "Mock" }
func (mockFactory) Description() string    { return "Mock node" }
func (mockFactory) Schema() map[string]any { return map[string]any{"type": "object"} }

func TestRegistry_RegisterAndCreate(t *testing.T) {
	r := NewRegistry(slog.Default())
	r.RegisterNode(mockFactory{})

	node, err := r.CreateNode(context.Background(), "mock", "node-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "node-1", node.ID())
	assert.Equal(t, "mock", node.Type())

	factory, ok := r.GetNodeFactory("mock")
	require.True(t, ok)
	assert.Equal(t, "Mock", factory.Name())
}

func TestRegistry_CreateUnknownNode(t *testing.T) {
	r := NewRegistry(slog.Default())

	_, err := r.CreateNode(context.Background(), "missing", "node-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node type 'missing' not registered")
}

func TestRegistry_HealthCheck(t *testing.T) {
	r := NewRegistry(slog.Default())

	msg, ok := r.HealthCheck()
	assert.False(t, ok)
	assert.Equal(t, "No nodes registered", msg)

	r.RegisterNode(mockFactory{})

	msg, ok = r.HealthCheck()
	assert.True(t, ok)
	assert.Equal(t, "1 node types registered", msg)
}

func TestRegistry_LoadNodePlugins_MissingDirectory(t *testing.T) {
	r := NewRegistry(slog.Default())

	err := r.LoadNodePlugins(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, r.GetAvailableNodes())
}
