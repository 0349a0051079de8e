// Package swclient provides the main entry point for creating Splitwise API clients.
package swclient

import (
	"errors"
	"strings"

	"github.com/DasULTRAS/splitwise-sdk/internal/client"
	"github.com/DasULTRAS/splitwise-sdk/internal/constants"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
)

// New creates a new Splitwise API client. Construction performs no I/O; the
// first network exchange happens on the first call.
func New(config *splitwise.Config) (splitwise.Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	// Normalize the base URL so façades can append paths directly.
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	} else if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	normalized := *config
	normalized.BaseURL = baseURL

	return client.New(&normalized), nil
}
