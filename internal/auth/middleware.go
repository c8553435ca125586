package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

type contextKey string

const operatorKey contextKey = "operator"

// apiKeyOperator is the identity attached to requests authenticated by API key
const apiKeyOperator = "api-key"

// RoleMiddleware accepts either a bearer token whose role is >= requiredRole or,
// when apiKey is not empty, a matching X-API-Key header
func RoleMiddleware(tokenGenerator *TokenGenerator, apiKey string, requiredRole int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" {
				if provided := r.Header.Get("X-API-Key"); provided != "" {
					if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
						writeError(w, http.StatusUnauthorized, "invalid or missing API key")
						return
					}
					ctx := context.WithValue(r.Context(), operatorKey, &Operator{Name: apiKeyOperator, Role: RoleAdmin})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			operator, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if operator.Role < requiredRole {
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), operatorKey, operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperator retrieves the authenticated operator from context
func GetOperator(ctx context.Context) (*Operator, bool) {
	operator, ok := ctx.Value(operatorKey).(*Operator)
	return operator, ok
}

// bearerToken extracts the token from the Authorization header or the access_token cookie
func bearerToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
