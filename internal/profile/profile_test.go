package profile

import "testing"

const (
	demoSalt          = "P0pOMMN6Ow5wIKOOSsaSQg=="
	demoOverviewKeyOp = "b3BkYXRhMDFAAAAAAAAAAIy1hZwIGeiLn4mLE1R8lEwIOye95GEyfZcPKlyXkkb0IBTfCXM+aDxjD7hOliuTM/YMIqxK+firVvW3c5cp2QMgvQHpDW2AsAQpBqcgBgRUCSP+THMVg15ZeR9lI77mHBpTQ70D+bchvkSmw3hoEGot7YcnQCATbouhMXIMO52D"
)

func sampleProfileJS() string {
	return `var profile={` +
		`"createdAt":1391118022,` +
		`"updatedAt":1391118022,` +
		`"iterations":50000,` +
		`"lastUpdatedBy":"DF0A1AD27E1D4480BBB8E34A8D4E3FE5",` +
		`"profileName":"default",` +
		`"salt":"` + demoSalt + `",` +
		`"masterKey":"` + demoOverviewKeyOp + `",` +
		`"overviewKey":"` + demoOverviewKeyOp + `",` +
		`"uuid":"C049D67C5A1D4BA59B3111D6E0A3AEC6"` +
		`};`
}

func TestParseValidProfile(t *testing.T) {
	p, err := Parse("profile.js", sampleProfileJS())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Iterations != 50000 {
		t.Errorf("Iterations = %d; want 50000", p.Iterations)
	}
	if len(p.Salt) == 0 {
		t.Error("Salt must be non-empty")
	}
	if p.MasterKey == nil || p.OverviewKey == nil {
		t.Error("both envelopes must be present")
	}
	if p.UUID != "C049D67C5A1D4BA59B3111D6E0A3AEC6" {
		t.Errorf("UUID = %q", p.UUID)
	}
}

func TestParseMissingFieldFails(t *testing.T) {
	if _, err := Parse("profile.js", `var profile={"iterations":1};`); err == nil {
		t.Error("expected an error for an incomplete profile document")
	}
}

func TestParseRejectsZeroIterations(t *testing.T) {
	contents := `var profile={"createdAt":1,"updatedAt":1,"iterations":0,` +
		`"lastUpdatedBy":"x","profileName":"x","salt":"` + demoSalt + `",` +
		`"masterKey":"` + demoOverviewKeyOp + `","overviewKey":"` + demoOverviewKeyOp + `","uuid":"x"};`
	if _, err := Parse("profile.js", contents); err == nil {
		t.Error("expected iterations=0 to be rejected")
	}
}
