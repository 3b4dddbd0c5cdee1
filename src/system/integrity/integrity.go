package integrity

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checker provides one-way content fingerprinting for arbitrary text
// payloads. a fingerprint is an integrity check, not encryption - there
// is no way (and no intention) to recover the payload from it.
type Checker struct {
}

func New() *Checker {
	return &Checker{}
}

// Fingerprint returns the lowercase hex encoded sha256 sum of the given
// payloads raw bytes. same input always results in the same fingerprint
// so it can be handed out and verified against at any later point.
func (c *Checker) Fingerprint(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the fingerprint of the given payload and compares it
// to the provided signature. a malformed or truncated signature simply
// results in false - verification never errors.
func (c *Checker) Verify(data string, signature string) bool {
	if c.Fingerprint(data) == signature {
		return true
	}
	return false
}
