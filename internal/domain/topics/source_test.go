package topics

import "testing"

func TestProjectPath(t *testing.T) {
	doc := map[string]interface{}{
		"company": map[string]interface{}{
			"name":      "Acme",
			"team_size": 12,
		},
		"flat": "value",
	}

	if v, ok := ProjectPath(doc, "company.name"); !ok || v != "Acme" {
		t.Errorf("company.name = %v, %v", v, ok)
	}
	if v, ok := ProjectPath(doc, "flat"); !ok || v != "value" {
		t.Errorf("flat = %v, %v", v, ok)
	}
	if _, ok := ProjectPath(doc, "company.missing"); ok {
		t.Error("missing leaf should not resolve")
	}
	if _, ok := ProjectPath(doc, "flat.deeper"); ok {
		t.Error("path through a non-map should not resolve")
	}
	if v, ok := ProjectPath(doc, ""); !ok || v == nil {
		t.Error("empty path should return the whole value")
	}
	if _, ok := ProjectPath(nil, ""); ok {
		t.Error("nil value should not resolve")
	}
	if _, ok := ProjectPath(map[string]interface{}{"x": nil}, "x"); ok {
		t.Error("explicit null should count as absent")
	}
}

func TestSourceKindValid(t *testing.T) {
	for _, k := range AllSourceKinds {
		if !k.Valid() {
			t.Errorf("kind %q should be valid", k)
		}
	}
	if SourceKind("invoice").Valid() {
		t.Error("unknown kind should be invalid")
	}
}

func TestRequiredByDefault(t *testing.T) {
	optional := map[SourceKind]bool{
		SourceOnboarding: true,
		SourceWebsite:    true,
		SourceComputed:   true,
	}
	for _, k := range AllSourceKinds {
		want := !optional[k]
		if got := k.RequiredByDefault(); got != want {
			t.Errorf("RequiredByDefault(%q) = %v, want %v", k, got, want)
		}
	}
}
