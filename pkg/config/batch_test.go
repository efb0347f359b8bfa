package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flareops/flarenode/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadBatchFile(t *testing.T) {
	path := writeFile(t, `
resource: delegation
operation: estimateRewards
continue_on_fail: true
parameters:
  amount: "10000"
  providers: "0xabc, 0xdef"
  duration: 30
items:
  - wallet: "0x1"
  - {}
`)

	batch, err := LoadBatchFile(path)
	require.NoError(t, err)

	cfg := batch.NodeConfig()
	assert.Equal(t, "delegation", cfg.Resource)
	assert.Equal(t, "estimateRewards", cfg.Operation)
	assert.True(t, cfg.ContinueOnFail)
	assert.Equal(t, "10000", cfg.Parameters["amount"])
	assert.Equal(t, 30, cfg.Parameters["duration"])

	assert.Equal(t, []models.Item{
		{JSON: map[string]any{"wallet": "0x1"}},
		{JSON: map[string]any{}},
	}, batch.ModelItems())
}

func TestLoadBatchFile_JSON(t *testing.T) {
	path := writeFile(t, `{"resource": "networkInfo", "operation": "getNetworkInfo"}`)

	batch, err := LoadBatchFile(path)
	require.NoError(t, err)
	assert.Equal(t, "networkInfo", batch.Resource)
	assert.Nil(t, batch.ModelItems())
	assert.Equal(t, map[string]any{}, batch.NodeConfig().Parameters)
}

func TestLoadBatchFile_Errors(t *testing.T) {
	_, err := LoadBatchFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read batch file")

	_, err = LoadBatchFile(writeFile(t, "resource: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse batch file")

	_, err = LoadBatchFile(writeFile(t, "resource: priceFeeds\nitems: []\n"))
	assert.ErrorIs(t, err, ErrNoItems)
}
