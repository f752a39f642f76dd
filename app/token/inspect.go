// Package token inspects bearer credentials without verifying them. The
// client never holds the identity service's signing key, so claims are used
// only to detect locally that a credential can no longer work upstream.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether the bearer credential is a JWT whose exp claim has
// elapsed at the given instant. Opaque or unparseable tokens are not treated
// as expired: expiry is a local shortcut, not an authorization decision, and
// the server remains the authority on rejecting them.
func Expired(bearer string, now time.Time) bool {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" || strings.Count(bearer, ".") != 2 {
		return false
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(bearer, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return now.After(claims.ExpiresAt.Time)
}
