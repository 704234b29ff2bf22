package agilekeychain

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenWalksAttachments(t *testing.T) {
	root := t.TempDir()
	itemDir := filepath.Join(root, "379A3A7E5D5A47A6AA3A69C4D1E57D1B")
	writeFile(t, filepath.Join(itemDir, "ATTACHUUID1"), "ciphertext-bytes")
	writeFile(t, filepath.Join(itemDir, "ATTACHUUID1.def"),
		`{"encryptionKey":"SL5","filename":"photo.jpg","encrypted":true}`)

	archive, err := Open(root)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	attachments := archive.Attachments()
	if len(attachments) != 1 {
		t.Fatalf("len(attachments) = %d; want 1", len(attachments))
	}
	a := attachments[0]
	if a.UUID != "ATTACHUUID1" {
		t.Errorf("UUID = %q", a.UUID)
	}
	if a.Metadata.FileName != "photo.jpg" {
		t.Errorf("FileName = %q", a.Metadata.FileName)
	}
	if !a.Metadata.Encrypted {
		t.Error("expected Encrypted = true")
	}
}

func TestOpenIgnoresSidecarFiles(t *testing.T) {
	root := t.TempDir()
	itemDir := filepath.Join(root, "ITEM")
	writeFile(t, filepath.Join(itemDir, "ATTACH"), "data")
	writeFile(t, filepath.Join(itemDir, "ATTACH.def"), `{"encryptionKey":"k","filename":"f","encrypted":false}`)

	archive, err := Open(root)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(archive.Attachments()) != 1 {
		t.Errorf("sidecar .def files must not be treated as attachments themselves")
	}
}
