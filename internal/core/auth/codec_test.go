package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	raw, err := c.Issue("alice", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if len(strings.Split(raw, ".")) != 3 {
		t.Fatalf("expected compact three-segment token, got %q", raw)
	}

	claims, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	c := NewCodec("secret", 0)
	if c.TTL() != DefaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTokenTTL, c.TTL())
	}
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	expired := signToken(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": "user",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	if _, err := c.Decode(expired); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_ExpiryBoundary(t *testing.T) {
	c := NewCodec("secret", time.Minute)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return issued }

	raw, err := c.Issue("alice", "user")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// One second inside the lifetime the token still decodes.
	c.now = func() time.Time { return issued.Add(time.Minute - time.Second) }
	if _, err := c.Decode(raw); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	// The expiry instant itself is already rejected: no leeway.
	c.now = func() time.Time { return issued.Add(time.Minute) }
	if _, err := c.Decode(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken at the expiry instant, got %v", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	raw, err := c.Issue("alice", "user")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip the last byte of the signature segment.
	tampered := []byte(raw)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := c.Decode(string(tampered)); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	raw, err := issuer.Issue("alice", "user")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Decode(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken across secrets, got %v", err)
	}
}

func TestCodec_AlgorithmMismatch(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	foreign := signToken(t, "secret", jwt.SigningMethodHS384, jwt.MapClaims{
		"sub":  "alice",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	if _, err := c.Decode(foreign); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for HS384 token, got %v", err)
	}
}

func TestCodec_MissingClaims(t *testing.T) {
	c := NewCodec("secret", time.Hour)
	exp := time.Now().Add(time.Hour).Unix()

	cases := map[string]jwt.MapClaims{
		"no subject": {"role": "user", "exp": exp},
		"no role":    {"sub": "alice", "exp": exp},
		"no expiry":  {"sub": "alice", "role": "user"},
	}
	for name, claims := range cases {
		raw := signToken(t, "secret", jwt.SigningMethodHS256, claims)
		if _, err := c.Decode(raw); err != ErrInvalidToken {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}
