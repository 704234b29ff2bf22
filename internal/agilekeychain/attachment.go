// Package agilekeychain walks the legacy agile-keychain attachment
// directory: plain filesystem enumeration plus JSON sidecar reads. It does
// not touch the op-vault crypto core at all — spec.md §1 calls this
// component out as an external collaborator, and this is the supplemented
// implementation recovered from original_source/src/agile_keychain/attachment.rs
// (with the on-disk path adjusted, see SPEC_FULL.md §11).
package agilekeychain

import (
	"encoding/json"
	"os"
	"path/filepath"

	vaulterrors "github.com/opvault-core/opvault-core/internal/errors"
)

// attachmentsRelPath is the on-disk location of the attachment archive
// relative to a keychain's root directory.
const attachmentsRelPath = "data/default/attachments"

// Metadata is the sidecar (.def) file accompanying each attachment.
type Metadata struct {
	EncryptionKeyUUID string `json:"encryptionKey"`
	FileName          string `json:"filename"`
	Encrypted         bool   `json:"encrypted"`
}

// Attachment pairs an item's attachment UUID with its parsed metadata.
type Attachment struct {
	UUID     string
	Path     string
	Metadata Metadata
}

// Entry groups the attachments belonging to a single item UUID directory.
type Entry struct {
	UUID        string
	Attachments []Attachment
}

// Archive is the full set of attachment entries found under a keychain's
// attachment directory.
type Archive struct {
	Entries []Entry
}

// WithKeychainPath opens the attachment archive rooted at
// <keychainPath>/data/default/attachments.
func WithKeychainPath(keychainPath string) (*Archive, error) {
	return Open(filepath.Join(keychainPath, attachmentsRelPath))
}

// Open walks path, treating each subdirectory as an item's attachment
// entry and each extensionless regular file within it as an attachment.
func Open(path string) (*Archive, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, vaulterrors.NewIOError("read", path, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		entry, err := readEntry(filepath.Join(path, de.Name()), de.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return &Archive{Entries: entries}, nil
}

// Attachments flattens every entry's attachments into a single slice.
func (a *Archive) Attachments() []Attachment {
	var all []Attachment
	for _, e := range a.Entries {
		all = append(all, e.Attachments...)
	}
	return all
}

func readEntry(path, uuid string) (Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return Entry{}, vaulterrors.NewIOError("read", path, err)
	}

	var attachments []Attachment
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != "" {
			continue
		}
		attachmentPath := filepath.Join(path, de.Name())
		meta, err := readMetadata(metadataPath(attachmentPath))
		if err != nil {
			return Entry{}, err
		}
		attachments = append(attachments, Attachment{
			UUID:     de.Name(),
			Path:     attachmentPath,
			Metadata: meta,
		})
	}
	return Entry{UUID: uuid, Attachments: attachments}, nil
}

// metadataPath replaces an attachment file's (absent) extension with .def.
func metadataPath(attachmentPath string) string {
	return attachmentPath + ".def"
}

func readMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, vaulterrors.NewIOError("read", path, err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, vaulterrors.NewMalformedJSONError(path, err)
	}
	return m, nil
}
