package folder

import "testing"

// TestParseMap is spec.md scenario S6.
func TestParseMap(t *testing.T) {
	contents := `loadFolders({"uuid-a":{"created":1,"updated":2,"tx":3,"overview":"x","uuid":"uuid-a"}});`
	m, err := ParseMap("folders.js", contents)
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	if len(m) != 1 {
		t.Fatalf("len(m) = %d; want 1", len(m))
	}
	f, ok := m["uuid-a"]
	if !ok {
		t.Fatal("missing folder uuid-a")
	}
	if f.Smart != false {
		t.Errorf("Smart = %v; want false (default)", f.Smart)
	}
	if f.Created != 1 || f.Updated != 2 || f.Tx != 3 || f.Overview != "x" || f.UUID != "uuid-a" {
		t.Errorf("unexpected folder contents: %+v", f)
	}
}

func TestParseMapSmartTrue(t *testing.T) {
	contents := `loadFolders({"uuid-b":{"created":1,"updated":2,"tx":3,"overview":"x","uuid":"uuid-b","smart":true}});`
	m, err := ParseMap("folders.js", contents)
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	if !m["uuid-b"].Smart {
		t.Error("expected smart=true to be honored when present")
	}
}

func TestParseMapEmpty(t *testing.T) {
	m, err := ParseMap("folders.js", `loadFolders({});`)
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("len(m) = %d; want 0", len(m))
	}
}
