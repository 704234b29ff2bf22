// Package profile parses the op-vault profile.js document: the KDF
// parameters, salt, and the two opaque opdata01 envelopes (master key,
// overview key) a password unlocks.
//
// Grounded in original_source/src/op_vault/profile.rs.
package profile

import (
	vaulterrors "github.com/opvault-core/opvault-core/internal/errors"
	"github.com/opvault-core/opvault-core/internal/jsonload"
	"github.com/opvault-core/opvault-core/internal/opdata"
)

// Locked is the parsed descriptor of a vault's unlock material. Both
// envelopes validate structurally at load time (opdata.FromBase64 already
// checked magic/length framing); Iterations is always >= 1 and Salt is
// non-empty, or Load would have failed.
type Locked struct {
	CreatedAt     uint64
	UpdatedAt     uint64
	Iterations    int
	LastUpdatedBy string
	ProfileName   string
	UUID          string
	Salt          []byte
	MasterKey     *opdata.Envelope
	OverviewKey   *opdata.Envelope
}

// Load reads and parses a profile.js file at path.
func Load(path string) (*Locked, error) {
	doc, err := jsonload.LoadFile(path, jsonload.ProfileJSPrefix, jsonload.ProfileJSSuffix)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

// Parse parses profile.js contents already read into memory, attributing
// errors to path for diagnostics.
func Parse(path, contents string) (*Locked, error) {
	doc, err := jsonload.Parse(path, contents, jsonload.ProfileJSPrefix, jsonload.ProfileJSSuffix)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

func fromDocument(doc *jsonload.Document) (*Locked, error) {
	createdAt, err := doc.Uint64("createdAt")
	if err != nil {
		return nil, err
	}
	updatedAt, err := doc.Uint64("updatedAt")
	if err != nil {
		return nil, err
	}
	iterations, err := doc.Uint64("iterations")
	if err != nil {
		return nil, err
	}
	lastUpdatedBy, err := doc.String("lastUpdatedBy")
	if err != nil {
		return nil, err
	}
	profileName, err := doc.String("profileName")
	if err != nil {
		return nil, err
	}
	uuid, err := doc.String("uuid")
	if err != nil {
		return nil, err
	}
	// Canonical per SPEC_FULL.md §11: salt is base64-decoded bytes at load
	// time, regardless of which representation original_source used at a
	// given call site.
	salt, err := doc.Bytes("salt")
	if err != nil {
		return nil, err
	}
	masterKey, err := doc.Envelope("masterKey")
	if err != nil {
		return nil, err
	}
	overviewKey, err := doc.Envelope("overviewKey")
	if err != nil {
		return nil, err
	}
	if iterations < 1 {
		return nil, vaulterrors.NewMalformedProfileError("iterations")
	}
	if len(salt) == 0 {
		return nil, vaulterrors.NewMalformedProfileError("salt")
	}

	return &Locked{
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		Iterations:    int(iterations),
		LastUpdatedBy: lastUpdatedBy,
		ProfileName:   profileName,
		UUID:          uuid,
		Salt:          salt,
		MasterKey:     masterKey,
		OverviewKey:   overviewKey,
	}, nil
}
