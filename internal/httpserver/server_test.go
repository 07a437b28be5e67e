package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costela-bot/internal/catalog"
	"costela-bot/internal/metrics"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthz(t *testing.T) {
	tests := []struct {
		name string
		dep  Pinger
		code int
	}{
		{"healthy", pingFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"redis down", pingFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(catalog.Default(), prometheus.NewRegistry(), map[string]Pinger{"redis": tt.dep})
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestMenu(t *testing.T) {
	router := NewRouter(catalog.Default(), prometheus.NewRegistry(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/menu", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var body menuResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Products, 3)
	assert.Equal(t, "Costela Premium", body.Products[2].Name)
	assert.Equal(t, "29.90", body.Products[2].UnitPrice)
	assert.Equal(t, "5.00", body.DeliveryFee)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewShop(reg).OrderSubmitted("pickup")

	router := NewRouter(catalog.Default(), reg, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), `orders_submitted_total{mode="pickup"} 1`))
}
