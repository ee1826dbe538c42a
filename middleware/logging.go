package middleware

import (
	customerrors "backend/customErrors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// statusRecorder captures the status code a handler writes directly, so
// handlers that shape their own failure bodies still log the real status.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func LoggingMiddleware(next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		err := next(recorder, r)

		duration := time.Since(start)
		status := recorder.status
		if err != nil {
			status = customerrors.GetStatus(err)
		}

		log.Printf("[%s] Completed %s %s | Status: %d | Duration: %v",
			requestID, r.Method, r.URL.Path, status, duration)

		return err
	}
}
