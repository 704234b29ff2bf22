package vault

import "testing"

const sampleVaultPath = "testdata/SampleVault.opvault"

// TestFullVaultUnlock is spec.md scenario S3.
func TestFullVaultUnlock(t *testing.T) {
	lv, err := New(sampleVaultPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v, ok := lv.Unlock("freddy")
	if !ok {
		t.Fatal("expected Unlock to succeed with the correct password")
	}
	defer v.Close()

	if len(v.MasterKey().EncKey()) != 32 || len(v.OverviewKey().EncKey()) != 32 {
		t.Error("unlocked main keys must be 32-byte enc/mac halves")
	}
}

// TestWrongPasswordAbsence is spec.md scenario S4.
func TestWrongPasswordAbsence(t *testing.T) {
	lv, err := New(sampleVaultPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := lv.Unlock("wrong"); ok {
		t.Fatal("expected Unlock to fail for the wrong password")
	}
}

// TestUnlockIdempotence checks spec.md testable property 7: unlocking twice
// with the same password yields byte-identical key material.
func TestUnlockIdempotence(t *testing.T) {
	lv, err := New(sampleVaultPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v1, ok := lv.Unlock("freddy")
	if !ok {
		t.Fatal("expected first unlock to succeed")
	}
	v2, ok := lv.Unlock("freddy")
	if !ok {
		t.Fatal("expected second unlock to succeed")
	}

	if string(v1.MasterKey().EncKey()) != string(v2.MasterKey().EncKey()) {
		t.Error("repeated unlocks with the same password must yield identical master keys")
	}
	if string(v1.OverviewKey().MacKey()) != string(v2.OverviewKey().MacKey()) {
		t.Error("repeated unlocks with the same password must yield identical overview keys")
	}
}

func TestNewFailsOnMissingVault(t *testing.T) {
	if _, err := New("testdata/does-not-exist"); err == nil {
		t.Error("expected an error loading a nonexistent vault path")
	}
}
