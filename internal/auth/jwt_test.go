package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/webstore/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(models.User{ID: 7, Username: "alice"})
	require.NoError(t, err)

	_, claims, err := TokenClaims("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, float64(7), claims["sub"])
}

func TestTokenClaims_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing prefix", "abc"},
		{"empty token", "Bearer "},
		{"garbage", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TokenClaims(tt.header)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenClaims_WrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"sub": 1, "username": "mallory", "exp": time.Now().Add(time.Minute).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, _, err = TokenClaims("Bearer " + forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenClaims_Expired(t *testing.T) {
	mu.RLock()
	secret := jwtSecret
	mu.RUnlock()

	claims := jwt.MapClaims{"sub": 1, "username": "alice", "exp": time.Now().Add(-time.Minute).Unix()}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, _, err = TokenClaims("Bearer " + expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
