// Package vaultkey implements the two-level op-vault key hierarchy: a
// password-derived key (PBKDF2-HMAC-SHA512) that authenticates and decrypts
// the profile's master/overview envelopes, and the main keys (SHA-512 split
// of a decrypted envelope) used for all subsequent item/overview decryption.
//
// Grounded in original_source/src/op_vault/key.rs and the reference Go
// rendering in other_examples' galaxy001-onepassword crypto.go
// (ComputeDerivedKeys / DecryptMasterKeys), with AES-CBC/HMAC primitives
// shared from internal/opdata.
package vaultkey

import (
	"crypto/sha512"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"

	"github.com/opvault-core/opvault-core/internal/opdata"
)

// KeySize is the length in bytes of both enc_key and mac_key.
const KeySize = 32

// Key is the capability every key variant exposes: a MAC over arbitrary
// bytes and an AES-256-CBC decrypt primitive, keyed by enc_key/mac_key
// respectively. DerivedKey and MainKey are polymorphic over this contract —
// callers must never depend on which variant they hold.
type Key interface {
	EncKey() []byte
	MacKey() []byte
	ComputeMAC(data []byte) []byte
	DecryptAES(iv, ciphertext []byte) ([]byte, error)
}

// pair is the shared (enc_key, mac_key) storage both DerivedKey and MainKey
// embed; it implements the MAC/decrypt primitives once.
type pair struct {
	encKey []byte
	macKey []byte
}

func (p pair) EncKey() []byte { return p.encKey }
func (p pair) MacKey() []byte { return p.macKey }

func (p pair) ComputeMAC(data []byte) []byte {
	return opdata.ComputeHMACSHA256(p.macKey, data)
}

func (p pair) DecryptAES(iv, ciphertext []byte) ([]byte, error) {
	return opdata.DecryptAESCBC(p.encKey, iv, ciphertext)
}

func splitKeyBytes(b []byte) pair {
	return pair{encKey: b[0:KeySize], macKey: b[KeySize : 2*KeySize]}
}

// DerivedKey is produced by PBKDF2-HMAC-SHA512 over the user's password; it
// authenticates and decrypts the profile's master/overview envelopes.
type DerivedKey struct {
	pair
}

// DeriveFromPassword computes a DerivedKey from (password, salt, iterations)
// via PBKDF2-HMAC-SHA512 with a 64-byte output, split enc_key=[0:32),
// mac_key=[32:64).
func DeriveFromPassword(password string, salt []byte, iterations int) DerivedKey {
	out := pbkdf2.Key([]byte(password), salt, iterations, 2*KeySize, sha512.New)
	return DerivedKey{pair: splitKeyBytes(out)}
}

// MainKey is produced by SHA-512 of a decrypted envelope's cleartext; it is
// used for all item/overview decryption once a vault is unlocked.
type MainKey struct {
	pair
}

// MainKeyFromEnvelope decrypts env under key and hashes the cleartext with
// SHA-512 to derive a fresh MainKey, split the same way as DeriveFromPassword.
// It reports ok=false if the envelope's MAC does not validate under key —
// the caller (vault.LockedVault.Unlock) maps this to "wrong password", not a
// structural error, per the op-vault unlock contract.
func MainKeyFromEnvelope(key Key, env *opdata.Envelope) (MainKey, bool) {
	plaintext, ok := env.DecryptWithKey(key)
	if !ok {
		return MainKey{}, false
	}
	sum := sha512.Sum512(plaintext)
	return MainKey{pair: splitKeyBytes(sum[:])}, true
}

// SecureZero overwrites b with zeros using a constant-time copy, to reduce
// the window a key's bytes are recoverable from a memory dump after a
// Vault is torn down. Like the teacher's own zeroing helper, this cannot
// guarantee erasure in the presence of GC-moved copies or compiler
// reordering — it only narrows the exposure window.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// Zero overwrites both halves of k's key material with zeros.
func (k MainKey) Zero() {
	SecureZero(k.encKey)
	SecureZero(k.macKey)
}

// Zero overwrites both halves of k's key material with zeros.
func (k DerivedKey) Zero() {
	SecureZero(k.encKey)
	SecureZero(k.macKey)
}
