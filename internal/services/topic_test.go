package services

import (
	"context"
	"errors"
	"testing"

	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
)

func newTopicFixture(t *testing.T) (TopicService, ReconcilerService, *fakeRecordStore, *fakeBlobStore, *recordingEvictor) {
	t.Helper()
	reg := mustTestRegistry(t, singleShotDef("a", 10), singleShotDef("b", 20), coachingDef("c", 30))
	store := newFakeRecordStore()
	blobs := newFakeBlobStore()
	evictor := newRecordingEvictor()
	defaults := fakeDefaults{basic: "m-basic", premium: "m-premium"}
	svc := NewTopicService(testLogger(t), reg, store, blobs, defaults, evictor)
	seeder := NewReconcilerService(testLogger(t), reg, store, blobs, defaults, evictor)
	return svc, seeder, store, blobs, evictor
}

func TestTopicGet(t *testing.T) {
	svc, seeder, _, _, _ := newTopicFixture(t)
	if _, err := seeder.SeedOne(context.Background(), "a", false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec, err := svc.Get(context.Background(), "a")
	if err != nil || rec.TopicID != "a" {
		t.Fatalf("Get: %v, %v", rec, err)
	}

	var notFound *topics.TopicNotFoundError
	if _, err := svc.Get(context.Background(), "nope"); !errors.As(err, &notFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTopicPatchAppliesAndEvicts(t *testing.T) {
	svc, seeder, store, _, evictor := newTopicFixture(t)
	if _, err := seeder.SeedOne(context.Background(), "a", false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	temp := 0.2
	name := "Renamed"
	updated, err := svc.Patch(context.Background(), "a", &domain.TopicPatch{
		Temperature: &temp,
		TopicName:   &name,
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if updated.Temperature != 0.2 || updated.TopicName != "Renamed" {
		t.Fatalf("patch not applied: %+v", updated)
	}

	stored, _ := store.Get(context.Background(), nil, "a")
	if stored.Temperature != 0.2 {
		t.Fatal("patch not persisted")
	}
	if evictor.evicted["a"] == 0 {
		t.Fatal("patch must evict the template cache")
	}
}

func TestTopicPatchRejectsInvalidValues(t *testing.T) {
	svc, seeder, store, _, _ := newTopicFixture(t)
	if _, err := seeder.SeedOne(context.Background(), "a", false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	temp := 5.0
	_, err := svc.Patch(context.Background(), "a", &domain.TopicPatch{Temperature: &temp})
	var invalid *topics.InvalidModelConfigurationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidModelConfigurationError, got %v", err)
	}

	stored, _ := store.Get(context.Background(), nil, "a")
	if stored.Temperature == 5.0 {
		t.Fatal("invalid patch must not be persisted")
	}
}

func TestTopicPatchEmptyIsNoOp(t *testing.T) {
	svc, seeder, _, _, evictor := newTopicFixture(t)
	if _, err := seeder.SeedOne(context.Background(), "a", false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Patch(context.Background(), "a", &domain.TopicPatch{}); err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if evictor.evicted["a"] != 0 {
		t.Fatal("empty patch must not evict")
	}
}

func TestTopicSoftAndHardDelete(t *testing.T) {
	svc, seeder, store, blobs, _ := newTopicFixture(t)
	if _, err := seeder.SeedOne(context.Background(), "a", false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Delete(context.Background(), "a", false); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	rec, _ := store.Get(context.Background(), nil, "a")
	if rec == nil || rec.IsActive {
		t.Fatal("soft delete should deactivate, not remove")
	}
	if ok, _ := blobs.Exists(context.Background(), "a", topics.SlotSystem); !ok {
		t.Fatal("soft delete must keep blobs")
	}

	if err := svc.Delete(context.Background(), "a", true); err != nil {
		t.Fatalf("hard delete: %v", err)
	}
	if rec, _ := store.Get(context.Background(), nil, "a"); rec != nil {
		t.Fatal("hard delete should remove the record")
	}
	if ok, _ := blobs.Exists(context.Background(), "a", topics.SlotSystem); ok {
		t.Fatal("hard delete must remove blobs")
	}
}

func TestTopicListWithRegistryDefaults(t *testing.T) {
	svc, seeder, _, _, _ := newTopicFixture(t)
	// Only a is materialized; b and c exist in the catalog alone.
	if _, err := seeder.SeedOne(context.Background(), "a", false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	merged, err := svc.ListWithRegistryDefaults(context.Background(), false)
	if err != nil {
		t.Fatalf("merged list: %v", err)
	}
	if len(merged) != 3 {
		t.Fatalf("merged length = %d, want 3", len(merged))
	}
	// Sorted by display order: a (10), b (20), c (30).
	for i, want := range []string{"a", "b", "c"} {
		if merged[i].TopicID != want {
			t.Fatalf("merged[%d] = %s, want %s", i, merged[i].TopicID, want)
		}
	}
	// The synthesized entries carry the shared model defaults.
	if merged[1].BasicModelCode != "m-basic" {
		t.Fatalf("synthesized defaults: %+v", merged[1])
	}
}

func TestTopicListByType(t *testing.T) {
	svc, seeder, _, _, _ := newTopicFixture(t)
	if res := seeder.Reconcile(context.Background(), false, false); !res.Success() {
		t.Fatalf("reconcile: %+v", res.Errors)
	}

	coaching, err := svc.ListByType(context.Background(), topics.TopicTypeConversationCoaching, false)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(coaching) != 1 || coaching[0].TopicID != "c" {
		t.Fatalf("coaching topics = %+v", coaching)
	}

	var invalid *topics.InvalidTopicTypeError
	if _, err := svc.ListByType(context.Background(), topics.TopicType("batch"), false); !errors.As(err, &invalid) {
		t.Fatalf("invalid type: %v", err)
	}
}
