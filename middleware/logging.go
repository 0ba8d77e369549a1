package middleware

import (
	"net/http"
	"time"

	"viukon-cms/logging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs it once served.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logging.Logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Infof("Event ID: HTTP_REQUEST, Description: %s %s", r.Method, r.URL.Path)
	})
}
