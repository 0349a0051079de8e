// Package commands implements the splitwise CLI commands.
package commands

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
	"github.com/DasULTRAS/splitwise-sdk/pkg/swclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrNotAuthenticated = errors.New("not authenticated, run 'splitwise login' or set SPLITWISE_TOKEN")
	ErrTokenRequired    = errors.New("API key is required")
	ErrGroupIDRequired  = errors.New("group id is required")
)

// CreateClient builds an API client from the resolved configuration.
func CreateClient() (splitwise.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	config := &splitwise.Config{
		AccessToken: token,
		BaseURL:     viper.GetString("base-url"),
	}

	if viper.GetBool("debug") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		config.Logger = splitwise.NewZerologLogger(logger)
		config.Debug = true
	}

	return swclient.New(config)
}
