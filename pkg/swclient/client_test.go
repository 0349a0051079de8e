package swclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
	"github.com/DasULTRAS/splitwise-sdk/pkg/swclient"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := swclient.New(nil)
	require.ErrorIs(t, err, swclient.ErrConfigRequired)
}

func TestNew_NoIOAtConstruction(t *testing.T) {
	t.Parallel()

	// Construction must succeed even with no reachable API and no credentials.
	client, err := swclient.New(&splitwise.Config{})
	require.NoError(t, err)
	client.Close()
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_current_user", r.URL.Path)
		_, _ = w.Write([]byte(`{"user":{"id":1}}`))
	}))
	t.Cleanup(server.Close)

	client, err := swclient.New(&splitwise.Config{
		AccessToken: "k",
		BaseURL:     server.URL + "/",
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	_, err = client.Users().GetCurrent(context.Background())
	require.NoError(t, err)
}

func TestNew_DoesNotMutateCallerConfig(t *testing.T) {
	t.Parallel()

	config := &splitwise.Config{AccessToken: "k", BaseURL: "secure.splitwise.com/api/v3.0/"}

	client, err := swclient.New(config)
	require.NoError(t, err)
	client.Close()

	assert.Equal(t, "secure.splitwise.com/api/v3.0/", config.BaseURL)
}

func TestNew_MissingTokenFailsOnFirstCall(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without a token")
	}))
	t.Cleanup(server.Close)

	client, err := swclient.New(&splitwise.Config{BaseURL: server.URL})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	_, err = client.Users().GetCurrent(context.Background())
	require.Error(t, err)
	assert.True(t, splitwise.IsAuthentication(err))
}

func TestNew_SchemeDefaultsToHTTPS(t *testing.T) {
	t.Parallel()

	// A bare host gets https:// prefixed. Verified indirectly: the client
	// dials the https port of a host that does not serve TLS and the failure
	// classifies as a network error rather than a URL parse failure.
	client, err := swclient.New(&splitwise.Config{
		AccessToken: "k",
		BaseURL:     "127.0.0.1:1",
		Retry:       &splitwise.RetryConfig{MaxRetries: 0},
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	_, err = client.Users().GetCurrent(context.Background())
	require.Error(t, err)
	assert.True(t, splitwise.IsNetwork(err), "got %v", err)
	assert.False(t, strings.Contains(err.Error(), "unsupported protocol"))
}
