// Package auth resolves the credential attached to every request attempt.
package auth

import (
	"context"
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenConfigured = errors.New("no access token configured")
	ErrEmptyToken        = errors.New("token source resolved to an empty value")
)

// TokenManager yields the bearer credential for one request attempt. The
// pipeline calls GetToken on every attempt so rotating providers are honored
// across retries.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager provides a fixed API key.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a literal API key.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

// ProviderTokenManager defers to a caller-supplied function, typically backed
// by a secret store or a rotating credential source.
type ProviderTokenManager struct {
	provider func(ctx context.Context) (string, error)
}

// NewProviderTokenManager creates a token manager around a provider function.
func NewProviderTokenManager(provider func(ctx context.Context) (string, error)) *ProviderTokenManager {
	return &ProviderTokenManager{provider: provider}
}

func (m *ProviderTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.provider(ctx)
}

// Resolve obtains a non-empty token from the manager. A nil manager means the
// client was built without credentials.
func Resolve(ctx context.Context, manager TokenManager) (string, error) {
	if manager == nil {
		return "", ErrNoTokenConfigured
	}

	token, err := manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
