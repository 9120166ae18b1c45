package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(rw, h)
	})
}

// MiddlewareRequestLog tags every request with an id and records method
// and path before handing off.
func MiddlewareRequestLog(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
			requestID := uuid.NewString()
			rw.Header().Set("X-Request-Id", requestID)
			logger.WithFields(logrus.Fields{
				"id":     requestID,
				"method": h.Method,
				"path":   h.URL.Path,
			}).Info("request received")
			next.ServeHTTP(rw, h)
		})
	}
}
