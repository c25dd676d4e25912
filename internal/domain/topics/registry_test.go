package topics

import (
	"strings"
	"testing"
)

func minimalDef(id string) *TopicDefinition {
	return &TopicDefinition{
		TopicID:   id,
		Name:      id,
		TopicType: TopicTypeSingleShot,
		TierLevel: TierBasic,
		Active:    true,
		Slots:     []Slot{SlotSystem, SlotUser},
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	reg := Default()
	if reg.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	// Every seed body may only reference declared parameters; the validator
	// reports these as drift, so the shipped catalog must be clean.
	for _, def := range reg.All() {
		for slot, body := range def.Seed.Bodies {
			if offenders := UndeclaredPlaceholders(def, body); len(offenders) > 0 {
				t.Errorf("topic %s slot %s references undeclared parameters %v",
					def.TopicID, slot, offenders)
			}
		}
	}
}

func TestDefaultCatalogOrdering(t *testing.T) {
	all := Default().All()
	for i := 1; i < len(all); i++ {
		if all[i-1].DisplayOrder > all[i].DisplayOrder {
			t.Fatalf("catalog not sorted by display order: %s (%d) before %s (%d)",
				all[i-1].TopicID, all[i-1].DisplayOrder, all[i].TopicID, all[i].DisplayOrder)
		}
	}
}

func TestNewRegistryRejectsDuplicateTopicID(t *testing.T) {
	_, err := NewRegistry([]*TopicDefinition{minimalDef("a"), minimalDef("a")})
	if err == nil || !strings.Contains(err.Error(), "duplicate topic_id") {
		t.Fatalf("expected duplicate topic_id error, got %v", err)
	}
}

func TestNewRegistryRejectsUnknownSourceKind(t *testing.T) {
	def := minimalDef("a")
	def.Params = []ParameterRef{{Name: "x", Source: SourceKind("bogus")}}
	_, err := NewRegistry([]*TopicDefinition{def})
	if err == nil || !strings.Contains(err.Error(), "unknown source kind") {
		t.Fatalf("expected unknown source kind error, got %v", err)
	}
}

func TestNewRegistryRejectsDuplicateParameterName(t *testing.T) {
	def := minimalDef("a")
	def.Params = []ParameterRef{
		{Name: "x", Source: SourceRequest},
		{Name: "x", Source: SourceGoal},
	}
	_, err := NewRegistry([]*TopicDefinition{def})
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Fatalf("expected duplicate parameter error, got %v", err)
	}
}

func TestNewRegistryRejectsSeedBodyForDisallowedSlot(t *testing.T) {
	def := minimalDef("a")
	def.Seed.Bodies = map[Slot]string{SlotResume: "hello"}
	_, err := NewRegistry([]*TopicDefinition{def})
	if err == nil || !strings.Contains(err.Error(), "does not allow") {
		t.Fatalf("expected disallowed slot error, got %v", err)
	}
}

func TestNewRegistryRejectsInvalidTopicType(t *testing.T) {
	def := minimalDef("a")
	def.TopicType = TopicType("batch")
	if _, err := NewRegistry([]*TopicDefinition{def}); err == nil {
		t.Fatal("expected invalid topic type error, got nil")
	}
}

func TestRegistryGetAndHas(t *testing.T) {
	reg, err := NewRegistry([]*TopicDefinition{minimalDef("a"), minimalDef("b")})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if !reg.Has("a") || !reg.Has("b") {
		t.Fatal("expected both topics present")
	}
	if reg.Has("c") {
		t.Fatal("unexpected topic c")
	}
	if def, ok := reg.Get("a"); !ok || def.TopicID != "a" {
		t.Fatalf("Get(a) = %v, %v", def, ok)
	}
}

func TestTierAtLeast(t *testing.T) {
	if !TierPremium.AtLeast(TierBasic) {
		t.Error("premium should satisfy basic")
	}
	if !TierPremium.AtLeast(TierPremium) {
		t.Error("premium should satisfy premium")
	}
	if TierBasic.AtLeast(TierPremium) {
		t.Error("basic should not satisfy premium")
	}
}

func TestParameterRefRequiredness(t *testing.T) {
	if (ParameterRef{Name: "x", Source: SourceRequest}).IsRequired() != true {
		t.Error("request params should be required by default")
	}
	if (ParameterRef{Name: "x", Source: SourceOnboarding}).IsRequired() != false {
		t.Error("onboarding params should be optional by default")
	}
	if Optional(ParameterRef{Name: "x", Source: SourceRequest}).IsRequired() {
		t.Error("Optional override ignored")
	}
	if !Mandatory(ParameterRef{Name: "x", Source: SourceComputed}).IsRequired() {
		t.Error("Mandatory override ignored")
	}
}
