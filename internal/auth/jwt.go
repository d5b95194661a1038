package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/webstore/internal/models"
)

var (
	mu        sync.RWMutex
	jwtSecret = []byte("webstore-dev-secret")
	tokenTTL  = 15 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

// Configure replaces the signing secret and token lifetime.
func Configure(secret string, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func GenerateToken(user models.User) (string, error) {
	mu.RLock()
	secret, ttl := jwtSecret, tokenTTL
	mu.RUnlock()

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	mu.RLock()
	secret := jwtSecret
	mu.RUnlock()

	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

// TokenClaims validates a "Bearer <token>" header value and returns its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, nil, ErrInvalidToken
	}

	token, err := ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, ErrInvalidToken
	}
	return token, claims, nil
}
