package splitwise_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	metrics := splitwise.NewMetricsCollectorWithRegistry(registry)

	metrics.RecordRequest("GET", "/get_groups", 200, 50*time.Millisecond)
	metrics.RecordRequest("GET", "/get_groups", 200, 30*time.Millisecond)
	metrics.RecordRetry("GET", "/get_groups")
	metrics.RecordError(splitwise.ErrorKindRateLimit, "GET", "/get_groups")
	metrics.RecordCacheHit("/get_groups")
	metrics.RecordCacheMiss("/get_groups")
	metrics.RecordDeduplicationHit("/get_groups")

	families, err := registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}

	for _, family := range families {
		total := 0.0

		for _, metric := range family.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				total += counter.GetValue()
			}
		}

		values[family.GetName()] = total
	}

	assert.Equal(t, 2.0, values["splitwise_requests_total"])
	assert.Equal(t, 1.0, values["splitwise_retries_total"])
	assert.Equal(t, 1.0, values["splitwise_errors_total"])
	assert.Equal(t, 1.0, values["splitwise_cache_hits_total"])
	assert.Equal(t, 1.0, values["splitwise_cache_misses_total"])
	assert.Equal(t, 1.0, values["splitwise_deduplication_hits_total"])
}

func TestMetricsCollector_SeparateRegistries(t *testing.T) {
	t.Parallel()

	// Two collectors on distinct registries must not collide.
	a := splitwise.NewMetricsCollectorWithRegistry(prometheus.NewRegistry())
	b := splitwise.NewMetricsCollectorWithRegistry(prometheus.NewRegistry())

	a.RecordCacheHit("/get_groups")
	b.RecordCacheHit("/get_groups")
}
