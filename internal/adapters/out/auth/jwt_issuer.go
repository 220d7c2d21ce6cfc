package auth

import (
	"errors"
	"fmt"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "mailroom"

// ErrEmptySecret is returned by NewJWTIssuer for a blank secret.
var ErrEmptySecret = errors.New("token secret must not be empty")

// JWTIssuer signs and verifies HS256 tokens. The token only proves who signed it in; the
// session row decides whether it is still valid.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer creates an issuer that signs with secret.
func NewJWTIssuer(secret string) (JWTIssuer, error) {
	if secret == "" {
		return JWTIssuer{}, ErrEmptySecret
	}
	return JWTIssuer{secret: []byte(secret), now: time.Now}, nil
}

// WithClock returns a copy that reads the current time from now.
func (i JWTIssuer) WithClock(now func() time.Time) JWTIssuer {
	i.now = now
	return i
}

// Issue signs a token whose jti is the session ID and whose subject is the user ID.
func (i JWTIssuer) Issue(session *identity.Session) (string, error) {
	if err := session.Validate(); err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID().String(),
		Subject:   session.UserID().String(),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(session.IssuedAt()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies the signature and expiry of token.
// Any failure wraps errs.ErrUnauthenticated.
func (i JWTIssuer) Parse(token string) (ports.TokenClaims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	sessionID, err := kernel.UUIDFromString(claims.ID)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: jti: %w", errs.ErrUnauthenticated, err)
	}
	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: sub: %w", errs.ErrUnauthenticated, err)
	}

	return ports.TokenClaims{SessionID: sessionID, UserID: userID}, nil
}
