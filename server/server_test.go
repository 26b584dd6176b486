package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/addrcheck"
	"github.com/vitwit/addrcheck/metrics"
	"github.com/vitwit/addrcheck/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheusRecorder(reg)
	require.NoError(t, err)

	v := addrcheck.New(addrcheck.WithMetrics(rec))
	return New(v, types.DefaultConfig().Server, WithGatherer(reg)), reg
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/v1/validate", `{"address":"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa","network":"BTC"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isValid":true,"network":"mainnet","network_name":"Bitcoin Mainnet"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(headerRequestID))

	w = do(t, s, http.MethodPost, "/v1/validate", `{"address":"invalid-address","network":"BTC"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isValid":false,"network":null,"network_name":null}`, w.Body.String())
}

func TestValidateEndpointVerbose(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/v1/validate?verbose=true", `{"address":"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa","network":"DOGE"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result types.ValidationResult `json:"result"`
		Error  *types.AddrError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Result.IsValid)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.ErrShapeMismatch, resp.Error.Code)
}

func TestValidateEndpointBadBody(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader("{"))
	req.Header.Set(headerRequestID, "req-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(headerRequestID))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Contains(t, resp.Error, "invalid request body")
}

func TestBatchEndpoint(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	body, err := json.Marshal(BatchRequest{Requests: []types.ValidationRequest{
		{Address: "0x742d35cc6634c0532925a3b844bc454e4438f44e", Network: "ETH"},
		{Address: "nope", Network: "SOL"},
		{Address: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", Network: "xrp"},
	}})
	require.NoError(t, err)

	w := do(t, s, http.MethodPost, "/v1/validate/batch", string(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[
		{"isValid":true,"network":"mainnet","network_name":"Ethereum Mainnet"},
		{"isValid":false,"network":null,"network_name":null},
		{"isValid":true,"network":"mainnet","network_name":"Ripple Mainnet"}
	]}`, w.Body.String())
}

func TestBatchEndpointTooLarge(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	reqs := make([]types.ValidationRequest, maxBatchSize+1)
	body, err := json.Marshal(BatchRequest{Requests: reqs})
	require.NoError(t, err)

	w := do(t, s, http.MethodPost, "/v1/validate/batch", string(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBodyTooLarge(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	body := `{"address":"` + strings.Repeat("z", maxBodyBytes) + `","network":"BTC"}`
	w := do(t, s, http.MethodPost, "/v1/validate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNetworksAndHealth(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/v1/networks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var nets NetworksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nets))
	assert.Equal(t, addrcheck.SupportedNetworks(), nets.Networks)

	w = do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	do(t, s, http.MethodPost, "/v1/validate", `{"address":"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa","network":"BTC"}`)

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `addrcheck_events_total{chain="bitcoin",result="valid",type="validation"} 1`)
}

func TestMetricsEndpointDisabled(t *testing.T) {
	t.Parallel()

	s := New(addrcheck.New(), types.DefaultConfig().Server)
	w := do(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeShutdown(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/v1/validate"
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(`{"address":"4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T","network":"SOL"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
