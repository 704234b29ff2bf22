// Package jsonload strips the JS-statement wrapper 1Password uses for two
// on-disk files (profile.js, folders.js) and parses the remainder as JSON,
// exposing typed field accessors with descriptive errors.
//
// Grounded in original_source/src/json_value_ext.rs (JsonValueExt::retrieve)
// and src/op_vault/profile.rs / src/op_vault/folder.rs's strip_js helpers.
package jsonload

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/opvault-core/opvault-core/internal/bytesutil"
	vaulterrors "github.com/opvault-core/opvault-core/internal/errors"
	"github.com/opvault-core/opvault-core/internal/opdata"
)

// StripJS trims a single leading occurrence of prefix and a single trailing
// occurrence of suffix from s, if present. It trims from the edges only
// (not "contains") and performs no whitespace trimming of its own.
func StripJS(s, prefix, suffix string) string {
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimSuffix(s, suffix)
	return s
}

// ProfileJSPrefix and ProfileJSSuffix wrap profile.js: `var profile=...;`.
const (
	ProfileJSPrefix = "var profile="
	ProfileJSSuffix = ";"
)

// FoldersJSPrefix and FoldersJSSuffix wrap folders.js: `loadFolders(...);`.
const (
	FoldersJSPrefix = "loadFolders("
	FoldersJSSuffix = ");"
)

// Document wraps a parsed JSON object together with the path it was loaded
// from, for descriptive error messages on typed field extraction.
type Document struct {
	path   string
	fields map[string]json.RawMessage
}

// LoadFile reads path as UTF-8, strips prefix/suffix, parses the remainder
// as a JSON object, and returns a Document for typed field extraction.
func LoadFile(path, prefix, suffix string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vaulterrors.NewIOError("read", path, err)
	}
	return Parse(path, string(data), prefix, suffix)
}

// Parse strips prefix/suffix from contents and parses the remainder as a
// JSON object, attributing errors to path for diagnostics.
func Parse(path, contents, prefix, suffix string) (*Document, error) {
	stripped := StripJS(contents, prefix, suffix)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripped), &fields); err != nil {
		return nil, vaulterrors.NewMalformedJSONError(path, err)
	}
	return &Document{path: path, fields: fields}, nil
}

func (d *Document) raw(key string) (json.RawMessage, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// String extracts key as an owned string.
func (d *Document) String(key string) (string, error) {
	raw, ok := d.raw(key)
	if !ok {
		return "", vaulterrors.NewMalformedProfileError(key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", vaulterrors.NewMalformedProfileError(key)
	}
	return s, nil
}

// Uint64 extracts key as an unsigned 64-bit integer.
func (d *Document) Uint64(key string) (uint64, error) {
	raw, ok := d.raw(key)
	if !ok {
		return 0, vaulterrors.NewMalformedProfileError(key)
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, vaulterrors.NewMalformedProfileError(key)
	}
	return n, nil
}

// Bool extracts key as a boolean.
func (d *Document) Bool(key string) (bool, error) {
	raw, ok := d.raw(key)
	if !ok {
		return false, vaulterrors.NewMalformedProfileError(key)
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, vaulterrors.NewMalformedProfileError(key)
	}
	return b, nil
}

// BoolOr extracts key as a boolean, returning def if the field is absent
// (matching the source's "smart" field default-false behavior).
func (d *Document) BoolOr(key string, def bool) bool {
	if _, ok := d.raw(key); !ok {
		return def
	}
	b, err := d.Bool(key)
	if err != nil {
		return def
	}
	return b
}

// Bytes extracts key as a base64-encoded string and decodes it.
func (d *Document) Bytes(key string) ([]byte, error) {
	s, err := d.String(key)
	if err != nil {
		return nil, err
	}
	b, err := bytesutil.DecodeBase64(s)
	if err != nil {
		return nil, vaulterrors.NewMalformedProfileError(key)
	}
	return b, nil
}

// Envelope extracts key as a base64-encoded opdata01 envelope.
func (d *Document) Envelope(key string) (*opdata.Envelope, error) {
	s, err := d.String(key)
	if err != nil {
		return nil, err
	}
	env, err := opdata.FromBase64(s)
	if err != nil {
		return nil, vaulterrors.NewMalformedProfileError(key)
	}
	return env, nil
}
