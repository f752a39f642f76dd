package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxdevs/app/token"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		bearer string
		want   bool
	}{
		{
			name:   "past exp is expired",
			bearer: signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}),
			want:   true,
		},
		{
			name:   "future exp is live",
			bearer: signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}),
			want:   false,
		},
		{
			name:   "no exp claim never expires",
			bearer: signed(t, jwt.RegisteredClaims{Subject: "ada"}),
			want:   false,
		},
		{
			name:   "opaque token never expires locally",
			bearer: "not-a-jwt-at-all",
			want:   false,
		},
		{
			name:   "garbage with two dots is treated as opaque",
			bearer: "aa.bb.cc",
			want:   false,
		},
		{
			name:   "empty string",
			bearer: "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.Expired(tt.bearer, now))
		})
	}
}
