package middlewares

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// RecoveryMiddleware turns a handler panic into a logged stack and a JSON 500
// carrying the request id. http.ErrAbortHandler is passed on to net/http.
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestID := GetRequestID(r.Context())
				logger.Error("panic recovered",
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("error", rec),
					zap.Stack("stack"),
				)

				body := map[string]string{"error": "internal server error"}
				if requestID != "" {
					body["request_id"] = requestID
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
