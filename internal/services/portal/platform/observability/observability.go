// Package observability provides request logging and Prometheus metrics.
package observability

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/maitri-healthcare/portal/internal/platform/requestctx"
)

// RequestLogger logs one line per request with status, size and latency.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r)
			requestID := requestctx.RequestIDFromContext(r.Context())
			if requestID == "" {
				requestID = "-"
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method, r.URL.Path, recorder.status(), recorder.bytes, time.Since(started).Round(time.Microsecond), requestID,
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code  int
	bytes int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.code == 0 {
		s.code = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(payload []byte) (int, error) {
	if s.code == 0 {
		s.code = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(payload)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func (s *statusRecorder) status() int {
	if s.code == 0 {
		return http.StatusOK
	}
	return s.code
}

func (s *statusRecorder) statusLabel() string {
	return strconv.Itoa(s.status())
}
