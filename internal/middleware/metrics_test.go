package middleware_test

import (
	"net/http"
	"testing"

	"strhelpers/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_InstrumentRecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(metrics.Instrument)
	r.Get("/v1/stats/{operation}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Post("/v1/group", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	serve(r, http.MethodGet, "/v1/stats/group")
	serve(r, http.MethodGet, "/v1/stats/digits")
	serve(r, http.MethodPost, "/v1/group")

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Requests.WithLabelValues("/v1/stats/{operation}", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Requests.WithLabelValues("/v1/group", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.EndpointLatency))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		middleware.NewMetrics(prometheus.NewRegistry())
		middleware.NewMetrics(prometheus.NewRegistry())
	})
}
