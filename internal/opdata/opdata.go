// Package opdata implements the opdata01 authenticated-encryption container
// used throughout the op-vault format: AES-256-CBC ciphertext with a
// trailing HMAC-SHA256 tag and an explicit plaintext length that allows
// arbitrary front-padding of the ciphertext.
//
// Layout (see original_source/src/op_vault/op_data_01.rs and
// other_examples galaxy001-onepassword's crypto.go for the reference shape):
//
//	offset  length  field
//	0       8       magic = "opdata01"
//	8       8       plaintext_len (uint64 little-endian)
//	16      16      iv
//	32      N       ciphertext (AES-256-CBC, no padding, N % 16 == 0)
//	32+N    32      mac = HMAC-SHA256(bytes[0:32+N])
package opdata

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"

	"github.com/opvault-core/opvault-core/internal/bytesutil"
	vaulterrors "github.com/opvault-core/opvault-core/internal/errors"
)

// Magic is the fixed 8-byte envelope prefix.
var Magic = []byte("opdata01")

// MinSize is the minimum total length of a valid envelope: magic (8) +
// plaintext_len (8) + iv (16) + mac (32), with zero-length ciphertext.
const MinSize = 8 + 8 + 16 + 32

// Key is the capability an opdata01 envelope needs from a key: a MAC over
// arbitrary bytes, and an AES-256-CBC decrypt primitive. Both DerivedKey and
// MainKey (internal/vaultkey) satisfy this.
type Key interface {
	ComputeMAC(data []byte) []byte
	DecryptAES(iv, ciphertext []byte) ([]byte, error)
}

// Envelope is an immutable, already-parsed opdata01 container. Construction
// only validates the fixed-layout framing; it does not require a key and
// does not touch the MAC.
type Envelope struct {
	raw          []byte
	plaintextLen uint64
}

// FromBytes parses raw as an opdata01 envelope. It fails with a
// MalformedEnvelopeError if the buffer is too short or the magic does not
// match; it does not verify the MAC (that needs a key — see ValidateWithKey).
func FromBytes(raw []byte) (*Envelope, error) {
	if len(raw) < MinSize {
		return nil, vaulterrors.NewMalformedEnvelopeError("envelope shorter than minimum size")
	}
	if !bytes.Equal(raw[:8], Magic) {
		return nil, vaulterrors.NewMalformedEnvelopeError("bad magic")
	}

	plaintextLen := bytesutil.Uint64LE(raw[8:16])
	ciphertextLen := uint64(len(raw) - 32 - 32)
	if plaintextLen > ciphertextLen {
		return nil, vaulterrors.NewMalformedEnvelopeError("plaintext_len exceeds ciphertext length")
	}
	if ciphertextLen%aes.BlockSize != 0 {
		return nil, vaulterrors.NewMalformedEnvelopeError("ciphertext length is not a multiple of the block size")
	}

	return &Envelope{raw: append([]byte(nil), raw...), plaintextLen: plaintextLen}, nil
}

// FromBase64 base64-decodes s and delegates to FromBytes.
func FromBase64(s string) (*Envelope, error) {
	raw, err := bytesutil.DecodeBase64(s)
	if err != nil {
		return nil, vaulterrors.NewMalformedEnvelopeError("invalid base64: " + err.Error())
	}
	return FromBytes(raw)
}

// IV returns the 16-byte AES-CBC initialization vector.
func (e *Envelope) IV() []byte {
	return e.raw[16:32]
}

// Ciphertext returns the block-aligned ciphertext slice (excludes the
// trailing MAC).
func (e *Envelope) Ciphertext() []byte {
	return e.raw[32 : len(e.raw)-32]
}

// MAC returns the trailing 32-byte HMAC-SHA256 tag.
func (e *Envelope) MAC() []byte {
	return e.raw[len(e.raw)-32:]
}

// PlaintextLen returns the declared cleartext length.
func (e *Envelope) PlaintextLen() uint64 {
	return e.plaintextLen
}

// macedRegion returns the bytes the trailing MAC is computed over: everything
// before the tag.
func (e *Envelope) macedRegion() []byte {
	return e.raw[:len(e.raw)-32]
}

// ValidateWithKey reports whether the envelope's trailing MAC matches
// HMAC-SHA256 of the preceding bytes under key's mac key, using a
// constant-time comparison.
func (e *Envelope) ValidateWithKey(key Key) bool {
	expected := key.ComputeMAC(e.macedRegion())
	return bytesutil.ConstantTimeEqual(expected, e.MAC())
}

// DecryptWithKey validates the envelope's MAC, then decrypts the ciphertext
// and strips the front-padding implied by PlaintextLen. It returns (nil,
// false) if the MAC does not validate — the same outcome shape whether the
// envelope is corrupt or the key is simply wrong, so that callers cannot
// distinguish the two paths by timing or by return type.
func (e *Envelope) DecryptWithKey(key Key) ([]byte, bool) {
	if !e.ValidateWithKey(key) {
		return nil, false
	}

	padded, err := key.DecryptAES(e.IV(), e.Ciphertext())
	if err != nil {
		return nil, false
	}

	if e.plaintextLen == 0 {
		return []byte{}, true
	}
	if e.plaintextLen > uint64(len(padded)) {
		return nil, false
	}

	start := uint64(len(padded)) - e.plaintextLen
	return padded[start:], true
}

// newCBCDecrypter builds an AES-256-CBC decrypter with no padding handling;
// callers are responsible for stripping any padding themselves (opdata01
// uses front-padding of known length, not PKCS#7).
func newCBCDecrypter(encKey, iv []byte) (cipher.BlockMode, error) {
	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewCBCDecrypter(block, iv), nil
}

// DecryptAESCBC decrypts ciphertext (must be block-aligned) with
// AES-256-CBC under encKey/iv, with no padding removal. This is the shared
// primitive internal/vaultkey.Key implementations delegate to.
func DecryptAESCBC(encKey, iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, vaulterrors.NewMalformedEnvelopeError("ciphertext length is not a multiple of the block size")
	}
	mode, err := newCBCDecrypter(encKey, iv)
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, len(ciphertext))
	mode.CryptBlocks(plaintext, ciphertext)
	return plaintext, nil
}

// ComputeHMACSHA256 computes HMAC-SHA256 of data under macKey. This is the
// shared primitive internal/vaultkey.Key implementations delegate to.
func ComputeHMACSHA256(macKey, data []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(data)
	return mac.Sum(nil)
}
