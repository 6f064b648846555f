package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager issues and verifies the signed identity tokens carried in the
// jwt cookie. Tokens are self-contained: subject is the user's email, validity
// is structural and nothing is stored server-side.
type JWTManager struct {
	secret      []byte
	tokenExpiry time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, tokenExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
	}
}

// GenerateToken generates a signed token with the email as subject
func (j *JWTManager) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ExtractSubject parses and verifies a token and returns its subject claim
func (j *JWTManager) ExtractSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("missing subject in token")
	}

	return claims.Subject, nil
}

// ValidateToken checks signature, expiry, and subject. It fails closed: any
// parse or verification error yields false.
func (j *JWTManager) ValidateToken(tokenString, expectedSubject string) bool {
	subject, err := j.ExtractSubject(tokenString)
	if err != nil {
		return false
	}

	return subject == expectedSubject
}

// TokenExpiry returns the configured token lifetime
func (j *JWTManager) TokenExpiry() time.Duration {
	return j.tokenExpiry
}
