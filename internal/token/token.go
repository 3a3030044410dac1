// Package token implements issuing and verifying the bearer tokens used to
// authenticate API requests.
package token

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "glimpse-api"
	audience = "glimpse-client"
)

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Payload is the identity carried by a token.
type Payload struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// Service signs and verifies bearer tokens with a process-wide secret.
type Service struct {
	secret []byte
}

// NewService returns a Service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token encoding the payload. Tokens carry no
// expiry claim: a successfully signed token remains valid indefinitely
// (there is no logout or revocation path).
func (s *Service) Issue(userID uint, username string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret not configured")
	}

	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      issuer,
		"aud":      audience,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the payload it carries.
// It fails with ErrInvalidToken on a bad signature, wrong signing method,
// wrong issuer or audience, or malformed claims.
func (s *Service) Verify(tokenString string) (*Payload, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return nil, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return nil, ErrInvalidToken
	}

	return &Payload{UserID: uint(userID), Username: username}, nil
}
