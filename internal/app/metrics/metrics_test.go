package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationLifecycleCounters(t *testing.T) {
	OperationStarted("lands")
	assert.Equal(t, 1.0, testutil.ToFloat64(operationsInFlight.WithLabelValues("lands")))

	before := testutil.ToFloat64(operationsTotal.WithLabelValues("lands.list", "fulfilled"))
	RecordOperation("lands", "lands.list", "fulfilled", 10*time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(operationsInFlight.WithLabelValues("lands")))
	assert.Equal(t, before+1, testutil.ToFloat64(operationsTotal.WithLabelValues("lands.list", "fulfilled")))
}

func TestRecordOperationClampsDuration(t *testing.T) {
	// A non-positive duration must still land in a bucket.
	before := testutil.CollectAndCount(operationDuration)
	RecordOperation("auth", "auth.request_otp", "rejected", 0)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(operationDuration), before)
}

func TestStaleSettlements(t *testing.T) {
	before := testutil.ToFloat64(staleSettlements.WithLabelValues("requests"))
	RecordStaleSettlement("requests")
	assert.Equal(t, before+1, testutil.ToFloat64(staleSettlements.WithLabelValues("requests")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordStaleSettlement("chat")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agrilease_gateway_stale_settlements_total")
}
