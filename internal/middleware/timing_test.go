package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"strhelpers/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTiming_AddsProcessingTimeHeader(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	rec := serve(middleware.Timing(handler), http.MethodGet, "/test")

	header := rec.Header().Get("X-Processing-Time-Micros")
	require.NotEmpty(t, header, "X-Processing-Time-Micros header should be present")

	micros, err := strconv.ParseInt(header, 10, 64)
	require.NoError(t, err, "header should be a valid integer")
	assert.GreaterOrEqual(t, micros, int64(0))
}

func TestTiming_MeasuresActualProcessingTime(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	rec := serve(middleware.Timing(handler), http.MethodGet, "/slow")

	micros, err := strconv.ParseInt(rec.Header().Get("X-Processing-Time-Micros"), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, micros, int64(50000), "should measure at least 50ms")
}

func TestTiming_PreservesStatusAndHeaders(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("OK"))
			},
			status: http.StatusOK,
		},
		{
			name: "bad request with json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"empty_input"}`))
			},
			status: http.StatusBadRequest,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(middleware.Timing(tt.handler), http.MethodPost, "/v1/group")

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Processing-Time-Micros"))
		})
	}
}
