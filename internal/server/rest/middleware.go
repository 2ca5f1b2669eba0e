package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/seashells/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogger logs every request on arrival and on completion with its
// status and duration. A missing X-Request-ID is generated.
func requestLogger(l logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		log := l.With("request_id", id, "method", r.Method, "path", r.URL.Path)
		log.Info(r.Context(), "Incoming request")

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.Info(r.Context(), "Request completed",
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
