// Package credentials provides Flare API credential sources.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/flareops/flarenode/pkg/flare"
)

// Environment variables read by EnvProvider.
const (
	EnvAPIKey  = "FLARE_API_KEY"
	EnvBaseURL = "FLARE_BASE_URL"
)

var ErrNoAPIKey = errors.New("no Flare API key configured")

// StaticProvider returns fixed credentials.
type StaticProvider struct {
	creds flare.Credentials
}

// NewStaticProvider creates a provider for apiKey and baseURL. An empty
// baseURL selects the Flare mainnet endpoint.
func NewStaticProvider(apiKey, baseURL string) *StaticProvider {
	if baseURL == "" {
		baseURL = flare.BaseURLFlare
	}

	return &StaticProvider{creds: flare.Credentials{APIKey: apiKey, BaseURL: baseURL}}
}

func (p *StaticProvider) Credentials(context.Context) (flare.Credentials, error) {
	if p.creds.APIKey == "" {
		return flare.Credentials{}, ErrNoAPIKey
	}

	return p.creds, nil
}

// EnvProvider reads credentials from the environment on every call.
type EnvProvider struct{}

func (EnvProvider) Credentials(ctx context.Context) (flare.Credentials, error) {
	return NewStaticProvider(os.Getenv(EnvAPIKey), os.Getenv(EnvBaseURL)).Credentials(ctx)
}

// FileProvider reads credentials from a JSON file {"apiKey": ..., "baseUrl": ...}.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Credentials(ctx context.Context) (flare.Credentials, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return flare.Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds flare.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return flare.Credentials{}, fmt.Errorf("failed to parse credentials file %s: %w", p.path, err)
	}

	return NewStaticProvider(creds.APIKey, creds.BaseURL).Credentials(ctx)
}
