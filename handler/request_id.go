package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"scoring-api/logger"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDHeader is the inbound header a caller may use to supply its own
// request id. The id is echoed into logs, never into the response body.
const RequestIDHeader = "X-Request-Id"

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		logger.Log.WithFields(logrus.Fields{
			"request_id": id,
			"path":       r.URL.Path,
		}).Info("request received")

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request id set by RequestIDMiddleware,
// or an empty string outside of it.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
