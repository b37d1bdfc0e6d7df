// Package auth extracts the caller's identity from the bearer token that
// API Gateway forwards with book requests.
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken  = errors.New("missing authentication token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims represents the JWT claims this system reads.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// BearerToken extracts the raw token from an Authorization header map.
func BearerToken(headers map[string]string) (string, error) {
	authHeader := headers["Authorization"]
	if authHeader == "" {
		// API Gateway lowercases headers on some payload versions
		authHeader = headers["authorization"]
	}
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1], nil
	}
	return authHeader, nil
}

// DecodeClaims parses the token payload without verifying its signature.
// The token has already passed the API Gateway Cognito authorizer before it
// reaches a handler, so the subject claim is trusted as-is; signature and
// issuer verification would belong here if these handlers were ever exposed
// without that authorizer in front.
func DecodeClaims(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims.UserID == "" {
		// Fall back to the registered subject when the raw claim is absent
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
