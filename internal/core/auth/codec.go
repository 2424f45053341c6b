package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long issued tokens stay valid when no TTL is
// configured.
const DefaultTokenTTL = 30 * time.Minute

// ErrInvalidToken is returned by Decode for every failure mode: bad
// signature, wrong algorithm, expired, or missing claims. Callers must not
// learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the structured payload embedded in a token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies compact JWT strings (HS256). The secret and TTL
// are fixed at construction and read-only afterwards; rotating the secret
// invalidates all outstanding tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // overridable clock for expiry tests
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token carrying subject and role with expiry = now + TTL.
func (c *Codec) Issue(subject, role string) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies raw and returns its claims. The signature must validate
// under HS256 with the configured secret, expiry is checked with zero leeway
// (a token at its exact expiry instant is already invalid), and both subject
// and role must be present. Any failure yields ErrInvalidToken and no
// partial claims.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
