package auth

import (
	"github.com/usermgmt/user-service/internal/core/domain"
)

// Authenticator turns a raw bearer token into an Identity. Verification is
// purely cryptographic: no store lookup, so the role inside the token is
// trusted verbatim until it expires even if the record changed since login.
type Authenticator struct {
	codec *Codec
}

func NewAuthenticator(codec *Codec) *Authenticator {
	return &Authenticator{codec: codec}
}

// Authenticate decodes and verifies raw. Every failure collapses to
// domain.ErrUnauthorized so callers cannot distinguish an expired token from
// a forged one.
func (a *Authenticator) Authenticate(raw string) (domain.Identity, error) {
	claims, err := a.codec.Decode(raw)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return domain.Identity{Username: claims.Subject, Role: claims.Role}, nil
}
