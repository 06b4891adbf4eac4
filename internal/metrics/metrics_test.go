package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectors(t *testing.T) {
	m := New()

	m.DatasetDone("kruskal", StatusOK)
	m.DatasetDone("kruskal", StatusOK)
	m.DatasetDone("prim", StatusFailed)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatasetsTotal.WithLabelValues("kruskal", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetsTotal.WithLabelValues("prim", StatusFailed)))

	done := m.Track()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetsInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DatasetsInFlight))

	m.ObserveStage(StageForest, 3*time.Millisecond)
	m.ObserveResult(10, 2)
	assert.Equal(t, 1, testutil.CollectAndCount(m.StageDuration))
}

func TestNilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStage(StageTotal, time.Second)
		m.DatasetDone("kruskal", StatusOK)
		m.ObserveResult(1, 1)
		m.Track()()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.DatasetDone("prim", StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `simforest_datasets_total{method="prim",status="ok"} 1`), body)
}
