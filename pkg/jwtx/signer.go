package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret = errors.New("jwtx: signing secret must not be empty")
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
)

// Signer mints HS256 session tokens. The secret is injected once at
// construction; nothing reads process configuration at sign time.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner returns a Signer for the given secret. ttl <= 0 falls back to
// DefaultSessionTTL.
func NewSigner(secret, issuer string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// TTL reports the configured token lifetime.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Sign mints a token for the given user snapshot, expiring TTL from now.
func (s *Signer) Sign(id, name, grouptag, photoURL, role string) (string, error) {
	claims := NewSessionClaims(s.issuer, id, name, grouptag, photoURL, role, s.ttl, time.Now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verifier validates session tokens and returns their claims.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier returns a Verifier sharing the Signer's secret. An empty
// issuer disables issuer enforcement.
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Verifier{secret: []byte(secret), issuer: issuer}, nil
}

// Verify checks the signature and expiry, returning the decoded claims.
func (v *Verifier) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return SessionClaims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return SessionClaims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return SessionClaims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return SessionClaims{}, ErrAlgMismatch
		default:
			return SessionClaims{}, err
		}
	}
	if !token.Valid {
		return SessionClaims{}, ErrInvalidSig
	}

	return claims, nil
}
