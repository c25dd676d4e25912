package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/growthpilot/backend/internal/clients/gcp"
	"github.com/growthpilot/backend/internal/clients/redis"
	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

// fakeRecordStore is an in-memory TopicRecordRepo with the same contract
// as the postgres one: Get returns nil on absence, Create is put-if-absent.
type fakeRecordStore struct {
	mu      sync.Mutex
	records map[string]*domain.TopicRecord

	failGet    map[string]error
	failCreate map[string]error
	failUpdate map[string]error
	listErr    error
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		records:    map[string]*domain.TopicRecord{},
		failGet:    map[string]error{},
		failCreate: map[string]error{},
		failUpdate: map[string]error{},
	}
}

func (f *fakeRecordStore) Get(_ context.Context, _ *gorm.DB, topicID string) (*domain.TopicRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failGet[topicID]; err != nil {
		return nil, err
	}
	rec, ok := f.records[topicID]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (f *fakeRecordStore) Create(_ context.Context, _ *gorm.DB, record *domain.TopicRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCreate[record.TopicID]; err != nil {
		return err
	}
	if _, exists := f.records[record.TopicID]; exists {
		return &topics.DuplicateTopicError{TopicID: record.TopicID}
	}
	cp := record.Clone()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	cp.UpdatedAt = time.Now().UTC()
	f.records[record.TopicID] = cp
	return nil
}

func (f *fakeRecordStore) Update(_ context.Context, _ *gorm.DB, record *domain.TopicRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failUpdate[record.TopicID]; err != nil {
		return err
	}
	existing, ok := f.records[record.TopicID]
	if !ok {
		return &topics.TopicNotFoundError{TopicID: record.TopicID}
	}
	cp := record.Clone()
	cp.CreatedAt = existing.CreatedAt
	cp.CreatedBy = existing.CreatedBy
	f.records[record.TopicID] = cp
	return nil
}

func (f *fakeRecordStore) SoftDelete(_ context.Context, _ *gorm.DB, topicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[topicID]
	if !ok {
		return &topics.TopicNotFoundError{TopicID: topicID}
	}
	rec.IsActive = false
	return nil
}

func (f *fakeRecordStore) HardDelete(_ context.Context, _ *gorm.DB, topicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[topicID]; !ok {
		return &topics.TopicNotFoundError{TopicID: topicID}
	}
	delete(f.records, topicID)
	return nil
}

func (f *fakeRecordStore) List(_ context.Context, _ *gorm.DB, includeInactive bool) ([]*domain.TopicRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.TopicRecord
	for _, rec := range f.records {
		if !includeInactive && !rec.IsActive {
			continue
		}
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out, nil
}

func (f *fakeRecordStore) ListByType(ctx context.Context, tx *gorm.DB, topicType topics.TopicType, includeInactive bool) ([]*domain.TopicRecord, error) {
	all, err := f.List(ctx, tx, includeInactive)
	if err != nil {
		return nil, err
	}
	var out []*domain.TopicRecord
	for _, rec := range all {
		if rec.TopicType == string(topicType) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeBlobStore keeps prompt bodies in a map keyed the same way the GCS
// store keys its objects.
type fakeBlobStore struct {
	mu    sync.Mutex
	blobs map[string]string

	failSave map[string]error
	getCalls int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		blobs:    map[string]string{},
		failSave: map[string]error{},
	}
}

func (f *fakeBlobStore) Save(_ context.Context, topicID string, slot topics.Slot, content string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failSave[topicID]; err != nil {
		return "", err
	}
	key := gcp.PromptKey(topicID, slot)
	f.blobs[key] = content
	return key, nil
}

func (f *fakeBlobStore) Get(_ context.Context, topicID string, slot topics.Slot) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	content, ok := f.blobs[gcp.PromptKey(topicID, slot)]
	return content, ok, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, topicID string, slot topics.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, gcp.PromptKey(topicID, slot))
	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, topicID string, slot topics.Slot) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.blobs[gcp.PromptKey(topicID, slot)]
	return ok, nil
}

func (f *fakeBlobStore) ListSlots(_ context.Context, topicID string) ([]topics.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []topics.Slot
	for _, slot := range []topics.Slot{topics.SlotSystem, topics.SlotUser, topics.SlotInitiation, topics.SlotResume, topics.SlotExtraction} {
		if _, ok := f.blobs[gcp.PromptKey(topicID, slot)]; ok {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (f *fakeBlobStore) Bucket() string { return "test-bucket" }

type fakeDefaults struct {
	basic   string
	premium string
}

func (f fakeDefaults) Defaults(context.Context) redis.ModelDefaults {
	return redis.ModelDefaults{Basic: f.basic, Premium: f.premium}
}

// recordingEvictor counts evictions per topic.
type recordingEvictor struct {
	mu      sync.Mutex
	evicted map[string]int
}

func newRecordingEvictor() *recordingEvictor {
	return &recordingEvictor{evicted: map[string]int{}}
}

func (e *recordingEvictor) Evict(topicID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.evicted[topicID]++
}

func mustTestRegistry(tb testing.TB, defs ...*topics.TopicDefinition) *topics.Registry {
	tb.Helper()
	reg, err := topics.NewRegistry(defs)
	if err != nil {
		tb.Fatalf("build registry: %v", err)
	}
	return reg
}

func singleShotDef(id string, order int) *topics.TopicDefinition {
	return &topics.TopicDefinition{
		TopicID:      id,
		Name:         fmt.Sprintf("Topic %s", id),
		Category:     "goals",
		TopicType:    topics.TopicTypeSingleShot,
		TierLevel:    topics.TierBasic,
		Active:       true,
		DisplayOrder: order,
		Params: []topics.ParameterRef{
			{Name: "goal_id", Source: topics.SourceRequest},
			{Name: "company_name", Source: topics.SourceOnboarding, Path: "company.name"},
		},
		Slots: []topics.Slot{topics.SlotSystem, topics.SlotUser},
		Seed: topics.SeedDefaults{
			Temperature: 0.7, MaxTokens: 1000, TopP: 1.0,
			Bodies: map[topics.Slot]string{
				topics.SlotSystem: "You help with {{company_name}}.",
				topics.SlotUser:   "Work on goal {{goal_id}}.",
			},
		},
	}
}

func coachingDef(id string, order int) *topics.TopicDefinition {
	return &topics.TopicDefinition{
		TopicID:      id,
		Name:         fmt.Sprintf("Topic %s", id),
		Category:     "coaching",
		TopicType:    topics.TopicTypeConversationCoaching,
		TierLevel:    topics.TierBasic,
		Active:       true,
		DisplayOrder: order,
		Params: []topics.ParameterRef{
			{Name: "user_profile", Source: topics.SourceUser},
		},
		Slots: []topics.Slot{topics.SlotSystem, topics.SlotInitiation, topics.SlotResume, topics.SlotExtraction},
		Seed: topics.SeedDefaults{
			Temperature: 0.8, MaxTokens: 800, TopP: 1.0,
			Bodies: map[topics.Slot]string{
				topics.SlotSystem:     "Coach for {{user_profile}}.",
				topics.SlotInitiation: "Start the session.",
				topics.SlotResume:     "Pick up where we left off.",
				topics.SlotExtraction: "Extract the outcomes.",
			},
		},
	}
}
