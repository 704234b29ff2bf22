// Package folder parses the op-vault folders.js document into a uuid ->
// folder record map.
//
// Grounded in original_source/src/op_vault/folder.rs.
package folder

import (
	"encoding/json"
	"os"

	vaulterrors "github.com/opvault-core/opvault-core/internal/errors"
	"github.com/opvault-core/opvault-core/internal/jsonload"
)

// Folder is one entry of folders.js: scalar fields plus a boolean "smart"
// flag that defaults to false when absent from the source document.
type Folder struct {
	Created  uint64
	Updated  uint64
	Tx       uint64
	Overview string
	UUID     string
	Smart    bool
}

// LoadMap reads and parses a folders.js file at path into a uuid -> Folder
// map. Iteration order over the result is not meaningful (map), matching
// spec.md's "insertion-order-independent" requirement.
func LoadMap(path string) (map[string]Folder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vaulterrors.NewIOError("read", path, err)
	}
	return ParseMap(path, string(data))
}

// ParseMap parses folders.js contents already read into memory.
func ParseMap(path, contents string) (map[string]Folder, error) {
	stripped := jsonload.StripJS(contents, jsonload.FoldersJSPrefix, jsonload.FoldersJSSuffix)

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripped), &root); err != nil {
		return nil, vaulterrors.NewMalformedJSONError(path, err)
	}

	result := make(map[string]Folder, len(root))
	for uuid, raw := range root {
		doc, err := jsonload.Parse(path, string(raw), "", "")
		if err != nil {
			return nil, err
		}
		f, err := folderFromDocument(doc)
		if err != nil {
			return nil, err
		}
		f.UUID = uuid
		result[uuid] = f
	}
	return result, nil
}

func folderFromDocument(doc *jsonload.Document) (Folder, error) {
	created, err := doc.Uint64("created")
	if err != nil {
		return Folder{}, err
	}
	updated, err := doc.Uint64("updated")
	if err != nil {
		return Folder{}, err
	}
	tx, err := doc.Uint64("tx")
	if err != nil {
		return Folder{}, err
	}
	overview, err := doc.String("overview")
	if err != nil {
		return Folder{}, err
	}
	uuid, err := doc.String("uuid")
	if err != nil {
		return Folder{}, err
	}
	smart := doc.BoolOr("smart", false)

	return Folder{
		Created:  created,
		Updated:  updated,
		Tx:       tx,
		Overview: overview,
		UUID:     uuid,
		Smart:    smart,
	}, nil
}
