package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted bcrypt password digests.
type Hasher struct {
	cost int
}

func NewHasher() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns a salted digest of plaintext.
func (h Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest counts as a mismatch, never an error.
func (h Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
