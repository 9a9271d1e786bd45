package middleware

import (
	"net/http"
	"strconv"
	"time"
)

const processingTimeHeader = "X-Processing-Time-Micros"

// Timing is a middleware that adds X-Processing-Time-Micros header to all responses.
// The header value is the time taken to process the request in microseconds.
func Timing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		rec.beforeHeader = func(h http.Header) {
			micros := time.Since(rec.start).Microseconds()
			h.Set(processingTimeHeader, strconv.FormatInt(micros, 10))
		}

		next.ServeHTTP(rec, r)
	})
}

// statusRecorder remembers the response status and lets a middleware touch
// the headers right before they are sent.
type statusRecorder struct {
	http.ResponseWriter
	start        time.Time
	status       int
	wroteHeader  bool
	beforeHeader func(http.Header)
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{
		ResponseWriter: w,
		start:          time.Now(),
		status:         http.StatusOK,
	}
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		if w.beforeHeader != nil {
			w.beforeHeader(w.Header())
		}
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
