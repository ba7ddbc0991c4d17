package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewDispatchMetrics(registry)
	require.NoError(t, err)

	m.EventEnqueued("POST_LIKED")
	m.EventEnqueued("POST_LIKED")
	m.EventOutcome("SOCIAL", "COMPLETED")
	m.DevicesRevoked("evicted", 2)
	m.DevicesRevoked("invalid_token", 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.eventsEnqueued.WithLabelValues("POST_LIKED")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventOutcomes.WithLabelValues("SOCIAL", "COMPLETED")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.devicesRevoked.WithLabelValues("evicted")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.devicesRevoked.WithLabelValues("invalid_token")))
}

func TestDispatchMetrics_GatewayCall(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewDispatchMetrics(registry)
	require.NoError(t, err)

	m.GatewayCall(20*time.Millisecond, 2, 1, nil)
	m.GatewayCall(time.Second, 0, 0, errors.New("unavailable"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.gatewayCalls.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.gatewayCalls.WithLabelValues("error")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.gatewayDevices.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.gatewayDevices.WithLabelValues("failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.gatewayDuration))
}

func TestDispatchMetrics_BatchCompleted(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewDispatchMetrics(registry)
	require.NoError(t, err)

	m.BatchCompleted(5, 2, 150*time.Millisecond)

	assert.Equal(t, float64(5), testutil.ToFloat64(m.batchEvents.WithLabelValues("processed")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.batchEvents.WithLabelValues("failed")))
}

func TestNewDispatchMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewDispatchMetrics(registry)
	require.NoError(t, err)

	_, err = NewDispatchMetrics(registry)
	assert.Error(t, err)
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	registry := NewRegistry()
	m, err := NewDispatchMetrics(registry)
	require.NoError(t, err)
	m.EventEnqueued("USER_FOLLOWED")

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `notifyd_events_enqueued_total{event_type="USER_FOLLOWED"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
