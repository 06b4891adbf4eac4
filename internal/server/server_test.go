package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
	"github.com/katalvlaran/simforest/internal/config"
	"github.com/katalvlaran/simforest/internal/metrics"
	"github.com/katalvlaran/simforest/prim_kruskal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, maxRecords int) (*Server, *gin.Engine) {
	t.Helper()
	s, err := New(config.ServerConfig{MaxRecords: maxRecords}, prim_kruskal.MethodKruskal, metrics.New())
	require.NoError(t, err)

	return s, s.Router()
}

func post(t *testing.T, r http.Handler, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

var triangle = AnalyzeRequest{
	Name: "tri",
	Records: []core.Record{
		{LabelA: "Item10(80%)", LabelB: "Item11(60%)", SharedLines: 10},
		{LabelA: "Item11(55%)", LabelB: "Item12(40%)", SharedLines: 5},
		{LabelA: "Item10(90%)", LabelB: "Item12(95%)", SharedLines: 20, RefB: "http://x/12"},
	},
}

func TestAnalyze(t *testing.T) {
	_, r := newTestServer(t, 0)

	for _, method := range []string{"", "prim"} {
		w := post(t, r, "/v1/analyze?method="+method, triangle)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

		var rep analysis.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
		assert.Equal(t, "tri", rep.Name)
		assert.Equal(t, 175, rep.TotalWeight)
		require.Len(t, rep.Forest, 2)
		assert.Equal(t, "Item12 (95%)", rep.Forest[0].LabelB)
		assert.Equal(t, "http://x/12", rep.Forest[0].RefB)
		require.Len(t, rep.Groups, 1)
		assert.Equal(t, []int{10, 11, 12}, rep.Groups[0].Members)
		assert.InDelta(t, 70.0, rep.Groups[0].Similarity, 1e-9)
	}
}

func TestAnalyze_MethodFromQuery(t *testing.T) {
	_, r := newTestServer(t, 0)

	w := post(t, r, "/v1/analyze?method=2", triangle)
	require.Equal(t, http.StatusOK, w.Code)
	var rep analysis.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, prim_kruskal.MethodPrim, rep.Method)

	w = post(t, r, "/v1/analyze?method=boruvka", triangle)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown method")
}

func TestAnalyze_MalformedLabel(t *testing.T) {
	_, r := newTestServer(t, 0)

	w := post(t, r, "/v1/analyze", AnalyzeRequest{Records: []core.Record{
		{LabelA: "Item10(80%)", LabelB: "Item11(60%)", SharedLines: 1},
		{LabelA: "Module17", LabelB: "Item11(60%)", SharedLines: 1},
	}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Module17", body["input"])
	assert.Contains(t, body["error"], "record 1")
}

func TestAnalyze_BadBody(t *testing.T) {
	_, r := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_TooManyRecords(t *testing.T) {
	_, r := newTestServer(t, 2)

	w := post(t, r, "/v1/analyze", triangle)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyze_EmptyRecords(t *testing.T) {
	_, r := newTestServer(t, 0)

	w := post(t, r, "/v1/analyze", AnalyzeRequest{Name: "empty"})
	require.Equal(t, http.StatusOK, w.Code)
	var rep analysis.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Empty(t, rep.Forest)
	assert.Empty(t, rep.Groups)
}

func TestRequestIDPropagated(t *testing.T) {
	_, r := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	_, r := newTestServer(t, 0)
	require.Equal(t, http.StatusOK, post(t, r, "/v1/analyze", triangle).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "simforest_")
}

func TestNew_UnknownMethod(t *testing.T) {
	_, err := New(config.ServerConfig{}, "boruvka", nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestRouter_NoMetrics(t *testing.T) {
	s, err := New(config.ServerConfig{}, prim_kruskal.MethodPrim, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
