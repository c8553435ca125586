// Package auth issues and checks the operator credentials of the admin API
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Operator roles
const (
	RoleViewer   = 0
	RoleOperator = 1
	RoleAdmin    = 2
)

// Operator identifies the caller of an admin route
type Operator struct {
	Name string
	Role int
}

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret            string
	accessTokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, accessExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:            secret,
		accessTokenExpiry: accessExpiry,
	}
}

// GenerateAccessToken creates an access token carrying the operator name and role
func (tg *TokenGenerator) GenerateAccessToken(operator string, role int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  operator,
		"role": role,
		"exp":  now.Add(tg.accessTokenExpiry).Unix(),
		"iat":  now.Unix(),
		"type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken validates an access token and returns the operator it was issued to
func (tg *TokenGenerator) ValidateAccessToken(tokenString string) (*Operator, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return nil, fmt.Errorf("token is not an access token")
	}

	name, ok := claims["sub"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("subject not found in token")
	}

	// JWT claims decode numbers as float64
	role, ok := claims["role"].(float64)
	if !ok {
		return nil, fmt.Errorf("role not found in token")
	}

	return &Operator{Name: name, Role: int(role)}, nil
}
