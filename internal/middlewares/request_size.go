package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestSizeLimitMiddleware caps the request body at maxRequestSize bytes.
// Bodies that declare a larger Content-Length are refused before any handler runs,
// the rest are wrapped so that reading past the cap fails with *http.MaxBytesError.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				RespondTooLarge(w, maxRequestSize)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}

// RespondTooLarge writes the 413 answer naming the request limit
func RespondTooLarge(w http.ResponseWriter, limit int64) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Connection", "close")
	w.WriteHeader(http.StatusRequestEntityTooLarge)
	json.NewEncoder(w).Encode(map[string]string{
		"error": fmt.Sprintf("request body exceeds the %.1fMB limit", float64(limit)/(1<<20)),
	})
}
