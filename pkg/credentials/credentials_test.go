package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	creds, err := NewStaticProvider("secret", "").Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", creds.APIKey)
	assert.Equal(t, flare.BaseURLFlare, creds.BaseURL)

	_, err = NewStaticProvider("", flare.BaseURLSongbird).Credentials(context.Background())
	require.ErrorIs(t, err, ErrNoAPIKey)
}

func TestEnvProvider(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, flare.BaseURLSongbird)

	creds, err := EnvProvider{}.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-key", creds.APIKey)
	assert.Equal(t, flare.BaseURLSongbird, creds.BaseURL)
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flare.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"apiKey":"file-key","baseUrl":"https://songbird-api.flare.network/v1"}`), 0o600))

	creds, err := NewFileProvider(path).Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "file-key", creds.APIKey)
	assert.Equal(t, flare.BaseURLSongbird, creds.BaseURL)
}

func TestFileProvider_Errors(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "missing.json")).Credentials(context.Background())
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

	_, err = NewFileProvider(path).Credentials(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse credentials file")
}
