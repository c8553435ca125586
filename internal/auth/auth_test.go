package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_RoundTrip(t *testing.T) {
	tg := NewTokenGenerator("secret", time.Hour)

	token, err := tg.GenerateAccessToken("hossam", RoleOperator)
	require.NoError(t, err)

	operator, err := tg.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "hossam", operator.Name)
	assert.Equal(t, RoleOperator, operator.Role)
}

func TestTokenGenerator_ValidateAccessToken_Errors(t *testing.T) {
	tg := NewTokenGenerator("secret", time.Hour)

	sign := func(claims jwt.MapClaims, secret string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: sign(jwt.MapClaims{"sub": "a", "role": 1, "type": "access", "exp": exp}, "other")},
		{name: "expired", token: sign(jwt.MapClaims{"sub": "a", "role": 1, "type": "access", "exp": time.Now().Add(-time.Hour).Unix()}, "secret")},
		{name: "refresh type", token: sign(jwt.MapClaims{"sub": "a", "role": 1, "type": "refresh", "exp": exp}, "secret")},
		{name: "missing subject", token: sign(jwt.MapClaims{"role": 1, "type": "access", "exp": exp}, "secret")},
		{name: "missing role", token: sign(jwt.MapClaims{"sub": "a", "type": "access", "exp": exp}, "secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operator, err := tg.ValidateAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, operator)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tg := NewTokenGenerator("secret", time.Hour)
	operatorToken, err := tg.GenerateAccessToken("ops", RoleOperator)
	require.NoError(t, err)
	viewerToken, err := tg.GenerateAccessToken("viewer", RoleViewer)
	require.NoError(t, err)

	tests := []struct {
		name           string
		apiKey         string
		setup          func(r *http.Request)
		expectedStatus int
		expectedName   string
	}{
		{
			name:           "no credentials",
			setup:          func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid bearer token",
			setup:          func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+operatorToken) },
			expectedStatus: http.StatusOK,
			expectedName:   "ops",
		},
		{
			name:           "token from cookie",
			setup:          func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: operatorToken}) },
			expectedStatus: http.StatusOK,
			expectedName:   "ops",
		},
		{
			name:           "insufficient role",
			setup:          func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+viewerToken) },
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid token",
			setup:          func(r *http.Request) { r.Header.Set("Authorization", "Bearer broken") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid api key",
			apiKey:         "key-1",
			setup:          func(r *http.Request) { r.Header.Set("X-API-Key", "key-1") },
			expectedStatus: http.StatusOK,
			expectedName:   "api-key",
		},
		{
			name:           "wrong api key",
			apiKey:         "key-1",
			setup:          func(r *http.Request) { r.Header.Set("X-API-Key", "key-2") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "api key ignored when not configured",
			setup:          func(r *http.Request) { r.Header.Set("X-API-Key", "key-1") },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RoleMiddleware(tg, tt.apiKey, RoleOperator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if op, ok := GetOperator(r.Context()); ok {
					seen = op.Name
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/admin/positions", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedName, seen)
		})
	}
}
