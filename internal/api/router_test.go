package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stockscope/internal/analyzer"
	"github.com/wonny/stockscope/internal/api/handlers"
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/picker"
	"github.com/wonny/stockscope/internal/screener"
	"github.com/wonny/stockscope/internal/testutil"
	"github.com/wonny/stockscope/internal/universe"
	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/logger"
)

const testOrigin = "http://localhost:5173"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	provider := testutil.NewMockProvider().
		Set(testutil.HealthySnapshot("AAPL"), testutil.WavySeries(500, 100, 0.3, 4))
	searcher := &testutil.MockSearcher{Results: []contracts.SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Type: "EQUITY"},
	}}

	s := screener.New(provider, config.ScreenerConfig{MaxTickers: 50, Workers: 2}, logger.Nop())
	p := picker.New(s, universe.NewStatic("test", []string{"AAPL"}), 10, logger.Nop())
	h := handlers.NewStockHandler(analyzer.New(provider, logger.Nop()), s, p, searcher, logger.Nop())

	return NewRouter(h, []string{testOrigin}, logger.Nop())
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"analyze", http.MethodGet, "/api/analyze/aapl", "", http.StatusOK},
		{"analyze unknown", http.MethodGet, "/api/analyze/NOPE", "", http.StatusBadRequest},
		{"screen", http.MethodPost, "/api/screen", `{"tickers":["AAPL"]}`, http.StatusOK},
		{"screen wrong method", http.MethodGet, "/api/screen", "", http.StatusMethodNotAllowed},
		{"daily picks", http.MethodGet, "/api/daily-picks", "", http.StatusOK},
		{"search", http.MethodGet, "/api/search/apple", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRouter_Root(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"message":"Stock Analysis API is running"}`, rec.Body.String())
}

func TestRouter_RequestID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/screen", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := requestIDMiddleware(recoveryMiddleware(logger.Nop())(panicking))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}

func TestRouter_APIErrorBodies(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantError  string
	}{
		{"wrong method on analyze", http.MethodPost, "/api/analyze/AAPL", http.StatusMethodNotAllowed, "Method not allowed"},
		{"wrong method on daily picks", http.MethodDelete, "/api/daily-picks", http.StatusMethodNotAllowed, "Method not allowed"},
		{"unknown api route", http.MethodGet, "/api/unknown", http.StatusNotFound, "Not found"},
		{"unknown top level route", http.MethodGet, "/nothing", http.StatusNotFound, "Not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
