package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of a session token. Clients are expected
// to re-authenticate (or have claims re-issued via a profile update) within
// this window.
const DefaultSessionTTL = time.Hour

// SessionClaims is the fixed claim set embedded in every session token.
// Keep this additive: middleware across the fleet decodes these fields and
// removing one is a breaking change.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the registered subject for consumers that only read
	// custom fields.
	UserID string `json:"id"`

	// Name is the user's display name at issue time.
	Name string `json:"name"`

	// GroupTag is the user-chosen category the user registered under.
	GroupTag string `json:"grouptag"`

	// PhotoURL is the user's avatar, empty when unset.
	PhotoURL string `json:"photoURL"`

	// Role gates admin surfaces.
	Role string `json:"role"`
}

// NewSessionClaims builds the claim set for a user snapshot. The claims
// mirror the user record at issue time; a stale token simply carries stale
// display fields until it expires or is re-issued.
func NewSessionClaims(issuer, id, name, grouptag, photoURL, role string, ttl time.Duration, now time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   id,
		Name:     name,
		GroupTag: grouptag,
		PhotoURL: photoURL,
		Role:     role,
	}
}
