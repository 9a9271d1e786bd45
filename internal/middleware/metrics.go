package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute labels requests that no route handled, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics holds the HTTP request collectors.
type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
	Requests        *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "strhelpers_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "strhelpers_requests_total",
			Help: "HTTP requests by endpoint and status code",
		}, []string{"endpoint", "status"}),
	}
}

// Instrument records latency and status per chi route pattern.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		endpoint := routePattern(r)
		m.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(rec.start).Seconds())
		m.Requests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
