package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed structure, unexpected algorithm, expired token. Callers
// must not surface the sub-case to clients.
var ErrInvalidToken = errors.New("invalid token")

// Codec signs claim sets into bearer tokens and verifies them back.
// The auth service and every resource service construct a Codec from
// the same secret; there is no other coupling between them.
//
// Issue and Verify are pure and safe for concurrent use.
type Codec struct {
	secret     []byte
	defaultTTL time.Duration
}

// signingMethod is fixed for the whole deployment. Verification
// rejects any token claiming a different algorithm, so a forged
// header cannot downgrade the check.
var signingMethod = jwt.SigningMethodHS256

// NewCodec creates a codec from the shared signing secret.
// defaultTTL applies when a caller issues a token without choosing a
// lifetime.
func NewCodec(secret string, defaultTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Codec{secret: []byte(secret), defaultTTL: defaultTTL}, nil
}

// Issue signs a token for the subject with the codec's default TTL.
func (c *Codec) Issue(subject string, roles []string) (string, error) {
	return c.IssueWithTTL(subject, roles, c.defaultTTL)
}

// IssueWithTTL signs a token that expires exactly ttl from now. A zero
// ttl produces a token that is already expired; the caller gets what
// it asked for.
func (c *Codec) IssueWithTTL(subject string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(signingMethod, claims).SignedString(c.secret)
}

// Verify checks the signature and expiry of a bearer token and returns
// the decoded claims. Any failure is reported as ErrInvalidToken; the
// underlying cause is attached for logging only.
func (c *Codec) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != signingMethod.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
