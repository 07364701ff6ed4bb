package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSnapshotWrite(t *testing.T) {
	before := testutil.ToFloat64(snapshotWrites.WithLabelValues("ok"))
	RecordSnapshotWrite("ok")
	RecordSnapshotWrite("ok")
	assert.Equal(t, before+2, testutil.ToFloat64(snapshotWrites.WithLabelValues("ok")))

	beforeErr := testutil.ToFloat64(snapshotWrites.WithLabelValues("error"))
	RecordSnapshotWrite("error")
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(snapshotWrites.WithLabelValues("error")))
}

func TestRecordWebhookDelivery(t *testing.T) {
	before := testutil.ToFloat64(webhookDeliveries.WithLabelValues("check_in", "ok"))
	RecordWebhookDelivery("check_in", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(webhookDeliveries.WithLabelValues("check_in", "ok")))
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	handler := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/brew", "418"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/brew", "418")))
}
