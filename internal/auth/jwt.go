// Package auth guards the admin console. A single shared secret opens a
// short-lived JWT session; there are no user accounts.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSessionExpiry is how long an admin session token is valid. The
// console re-prompts for the secret after that.
const AdminSessionExpiry = 1 * time.Hour

// adminSubject is the fixed subject claim of admin session tokens.
const adminSubject = "admin"

// Predefined auth errors.
var (
	ErrInvalidSecret       = errors.New("invalid admin secret")
	ErrInvalidSessionToken = errors.New("invalid admin session token")
	ErrSessionExpired      = errors.New("admin session has expired")
)

// SessionClaims represents the claims in an admin session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionConfig holds configuration for the admin session service.
type SessionConfig struct {
	// AdminSecret is the shared secret that opens a session. Comparison is
	// case-sensitive.
	AdminSecret string

	// SigningKey is the secret key used to sign session tokens.
	SigningKey string

	// Issuer is the issuer claim for tokens (e.g., "https://api.pregador.app").
	Issuer string

	// Audience is the audience claim for tokens (e.g., "pregador-admin").
	Audience string

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// SessionService issues and validates admin session tokens.
type SessionService struct {
	adminSecret []byte
	signingKey  []byte
	issuer      string
	audience    string
	now         func() time.Time
}

// NewSessionService creates a new admin session service.
func NewSessionService(cfg SessionConfig) *SessionService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		adminSecret: []byte(cfg.AdminSecret),
		signingKey:  []byte(cfg.SigningKey),
		issuer:      cfg.Issuer,
		audience:    cfg.Audience,
		now:         now,
	}
}

// Login checks the shared secret and, when it matches, issues a session
// token. The comparison is constant time.
func (s *SessionService) Login(secret string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(secret), s.adminSecret) != 1 {
		return "", time.Time{}, ErrInvalidSecret
	}

	now := s.now()
	expiresAt := now.Add(AdminSessionExpiry)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   adminSubject,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			ID:        generateTokenID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateSession validates a session token and returns the claims.
func (s *SessionService) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidSessionToken, err.Error())
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject != adminSubject {
		return nil, ErrInvalidSessionToken
	}

	return claims, nil
}

// generateTokenID generates a unique token ID.
func generateTokenID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
