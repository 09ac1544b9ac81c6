package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/config"
	"storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(metrics bool) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: "0", Env: "test"},
		Sessions: config.SessionConfig{Max: 10},
		Metrics:  config.MetricsConfig{Enabled: metrics, Path: "/metrics"},
	}
}

func TestRouter_Health(t *testing.T) {
	sessions := session.NewRegistry()
	_, err := sessions.Create()
	require.NoError(t, err)
	router := NewRouter(testConfig(false), zap.NewNop(), sessions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["sessions"])
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := NewRouter(testConfig(true), zap.NewNop(), session.NewRegistry())

	create := httptest.NewRecorder()
	router.ServeHTTP(create, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	require.Equal(t, http.StatusCreated, create.Code)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "storefront_http_requests_total"))
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := NewRouter(testConfig(false), zap.NewNop(), session.NewRegistry())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewServer(t *testing.T) {
	srv := NewServer(testConfig(false), zap.NewNop())

	assert.Equal(t, ":0", srv.Addr)
	assert.NoError(t, srv.Close())
}
