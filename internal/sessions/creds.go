package sessions

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// VerifySecret digests the candidate secret and compares it against the
// precomputed hex digest in constant time, so response timing leaks nothing
// about how much of the digest matched.
func VerifySecret(candidate, wantHexDigest string) bool {
	sum := sha256.Sum256([]byte(candidate))
	got := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(wantHexDigest)) == 1
}

// DigestSecret returns the hex-encoded SHA-256 digest of a secret. Used by
// operators to derive the value stored in configuration.
func DigestSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
