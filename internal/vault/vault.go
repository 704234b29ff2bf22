// Package vault implements the op-vault Locked -> Unlocked state machine:
// LockedVault loads a profile and path with no cryptography performed;
// Unlock derives keys from a password and, only if both the master and
// overview envelopes authenticate, produces an Unlocked Vault holding the
// two main keys.
//
// Grounded in original_source/src/op_vault/vault.rs, with the unlock
// sequencing constraint from spec.md §4.7/§5 (both envelopes are always
// attempted, so execution time is a function of the KDF iteration count
// alone, not of which envelope's MAC happened to mismatch first).
package vault

import (
	"path/filepath"

	"github.com/opvault-core/opvault-core/internal/log"
	"github.com/opvault-core/opvault-core/internal/profile"
	"github.com/opvault-core/opvault-core/internal/vaultkey"
)

// profileRelPath is the on-disk location of profile.js relative to a vault's
// root directory.
const profileRelPath = "default/profile.js"

// LockedVault is a vault whose profile has been loaded but whose keys have
// not been derived. It is immutable and cheap to copy by value of its path
// plus the parsed profile.
type LockedVault struct {
	path    string
	profile *profile.Locked
}

// New loads <path>/default/profile.js and returns a LockedVault. No
// cryptography is performed; failures are I/O or parse errors, surfaced as
// typed errors from internal/errors.
func New(path string) (*LockedVault, error) {
	profilePath := filepath.Join(path, profileRelPath)
	log.Debug("loading locked profile", log.String("path", profilePath))

	p, err := profile.Load(profilePath)
	if err != nil {
		return nil, err
	}
	return &LockedVault{path: path, profile: p}, nil
}

// Path returns the vault's root directory.
func (lv *LockedVault) Path() string { return lv.path }

// Profile returns the parsed locked profile.
func (lv *LockedVault) Profile() *profile.Locked { return lv.profile }

// Unlocked holds the vault's two main keys once authenticated.
type Unlocked struct {
	MasterKey   vaultkey.MainKey
	OverviewKey vaultkey.MainKey
}

// Vault is an unlocked vault: the path plus the two main keys derived from
// a correct password. It holds the sole strong reference to its key
// material; Close zeros both keys.
type Vault struct {
	path    string
	profile Unlocked
}

// Path returns the vault's root directory.
func (v *Vault) Path() string { return v.path }

// MasterKey returns the main key used to decrypt item bodies.
func (v *Vault) MasterKey() vaultkey.MainKey { return v.profile.MasterKey }

// OverviewKey returns the main key used to decrypt item metadata.
func (v *Vault) OverviewKey() vaultkey.MainKey { return v.profile.OverviewKey }

// Close zeros the vault's main key material. Safe to call more than once.
func (v *Vault) Close() {
	v.profile.MasterKey.Zero()
	v.profile.OverviewKey.Zero()
}

// Unlock derives a password key and attempts to authenticate both the
// master and overview envelopes under it.
//
// A wrong password, or structural corruption discovered in either envelope,
// both surface as (nil, false) — never an error — so a caller cannot
// distinguish "wrong password" from "corrupt vault" from the return type,
// matching spec.md §4.7/§7. Both envelopes are attempted even if the first
// fails, so that the observable running time of Unlock is a function of the
// PBKDF2 iteration count only (spec.md §5).
func (lv *LockedVault) Unlock(password string) (*Vault, bool) {
	derived := vaultkey.DeriveFromPassword(password, lv.profile.Salt, lv.profile.Iterations)
	defer derived.Zero()

	masterKey, masterOK := vaultkey.MainKeyFromEnvelope(derived, lv.profile.MasterKey)
	overviewKey, overviewOK := vaultkey.MainKeyFromEnvelope(derived, lv.profile.OverviewKey)

	if !masterOK || !overviewOK {
		masterKey.Zero()
		overviewKey.Zero()
		log.Debug("unlock failed", log.String("path", lv.path))
		return nil, false
	}

	log.Info("vault unlocked", log.String("path", lv.path))
	return &Vault{
		path: lv.path,
		profile: Unlocked{
			MasterKey:   masterKey,
			OverviewKey: overviewKey,
		},
	}, true
}
