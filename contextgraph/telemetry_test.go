// SPDX-License-Identifier: MIT

package contextgraph_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var (
	readerOnce sync.Once
	reader     *sdkmetric.ManualReader
)

// metricReader installs a global meter provider once per test binary.
// Instruments created at init delegate to the first provider installed.
func metricReader() *sdkmetric.ManualReader {
	readerOnce.Do(func() {
		reader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	})

	return reader
}

// counterValue returns the sum recorded by counter for the named context.
func counterValue(t *testing.T, r *sdkmetric.ManualReader, counter, contextName string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, r.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != counter {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", counter)
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value("context"); ok && v.AsString() == contextName {
					return dp.Value
				}
			}
		}
	}

	return 0
}

func TestTelemetry_Counters(t *testing.T) {
	r := metricReader()
	c := newContext("metered")

	a := c.AddContextoid(root(0))
	b := c.AddContextoid(datum(1, 1))
	d := c.AddContextoid(datum(2, 2))
	require.NoError(t, c.AddEdge(a, b, 1))
	require.NoError(t, c.AddEdge(b, d, 1))
	require.NoError(t, c.UpdateEdge(b, d, 2)) // reweigh only
	require.NoError(t, c.UpdateEdge(d, a, 2))
	require.NoError(t, c.RemoveEdge(d, a))
	c.RemoveContextoid(b) // severs a→b and b→d
	c.RemoveContextoid(b) // no-op

	require.Equal(t, int64(3), counterValue(t, r, "contextoid.added", "metered"))
	require.Equal(t, int64(1), counterValue(t, r, "contextoid.removed", "metered"))
	require.Equal(t, int64(3), counterValue(t, r, "edge.added", "metered"))
	require.Equal(t, int64(3), counterValue(t, r, "edge.removed", "metered"))
	require.Zero(t, counterValue(t, r, "contextoid.added", "someone-else"))
}
