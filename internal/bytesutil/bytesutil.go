// Package bytesutil provides the small byte-level primitives the op-vault
// container format builds on: base64 decoding, little-endian 64-bit integer
// decode, and constant-time comparison.
package bytesutil

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
)

// DecodeBase64 decodes standard (padded) base64 as used throughout the
// op-vault JSON documents (salts, envelopes).
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Uint64LE decodes the first 8 bytes of b as a little-endian unsigned
// 64-bit integer. The caller must ensure len(b) >= 8.
func Uint64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b[:8])
}

// ConstantTimeEqual reports whether a and b are equal using a constant-time
// comparison, so that MAC verification does not leak which byte first
// differed through timing.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
