package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewMetrics_RecordsAndObserves(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"), func(context.Context) (int64, error) { return 3, nil })
	require.NoError(t, err)

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("http.method", "GET"))
	m.RequestCounter.Add(ctx, 1, attrs)
	m.RequestCounter.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, 0.02, attrs)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		byName[md.Name] = md
	}

	requests, ok := byName["http_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, requests.DataPoints, 1)
	assert.Equal(t, int64(2), requests.DataPoints[0].Value)

	tasks, ok := byName["tasks_total"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, tasks.DataPoints, 1)
	assert.Equal(t, int64(3), tasks.DataPoints[0].Value)

	_, ok = byName["http_request_duration_seconds"].Data.(metricdata.Histogram[float64])
	assert.True(t, ok)
}

func TestSetup_WithoutEndpointMeter(t *testing.T) {
	p, err := Setup(context.Background(), Options{ServiceName: "task-manager"})
	require.NoError(t, err)
	require.NotNil(t, p.Logger)
	assert.NoError(t, p.Shutdown(context.Background()))
}
