// Package flare provides the HTTP client for the Flare Network data API.
package flare

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Known API endpoints.
const (
	BaseURLFlare    = "https://flare-api.flare.network/v1"
	BaseURLSongbird = "https://songbird-api.flare.network/v1"
)

// Networks lists the API endpoints a credential may point at.
var Networks = map[string]string{
	"Flare Mainnet":    BaseURLFlare,
	"Songbird Testnet": BaseURLSongbird,
}

var ErrUnknownBaseURL = errors.New("base URL is not a known Flare API endpoint")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials holds the API key and endpoint used for one batch execution.
type Credentials struct {
	APIKey  string `json:"apiKey"  validate:"required"`
	BaseURL string `json:"baseUrl" validate:"required,url"`
}

// Validate checks the credentials. Unless allowCustom is set the base URL must
// be one of the known networks.
func (c Credentials) Validate(allowCustom bool) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}

	if allowCustom {
		return nil
	}

	if !slices.Contains(knownBaseURLs(), strings.TrimRight(c.BaseURL, "/")) {
		return fmt.Errorf("%w: %s", ErrUnknownBaseURL, c.BaseURL)
	}

	return nil
}

// Base returns the base URL without trailing slashes.
func (c Credentials) Base() string {
	return strings.TrimRight(c.BaseURL, "/")
}

func knownBaseURLs() []string {
	urls := make([]string, 0, len(Networks))
	for _, u := range Networks {
		urls = append(urls, u)
	}

	return urls
}
