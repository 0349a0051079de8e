package splitwise_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := splitwise.NewZerologLogger(zerolog.New(&buf))

	logger.Warn("request failed", map[string]interface{}{
		"endpoint": "/get_groups",
		"attempt":  2,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "request failed", entry["message"])
	assert.Equal(t, "/get_groups", entry["endpoint"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestZerologLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := splitwise.NewZerologLogger(zerolog.New(&buf))

	logger.Debug("d", nil)
	logger.Info("i", nil)
	logger.Error("e", nil)

	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}
