package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/growthpilot/backend/internal/clients/gcp"
	"github.com/growthpilot/backend/internal/data/repos/topicstore"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

// PromptBundle is the ready-to-send assembly for one invocation: the
// system prompt, the turn prompt (first or continuation), and the model
// the caller's tier resolved to.
type PromptBundle struct {
	SystemText string `json:"system_text"`
	TurnText   string `json:"turn_text"`
	ModelCode  string `json:"model_code"`
}

// CacheEvictor is implemented by the bundle service and consumed by every
// admin write path so edits are visible before TTL expiry.
type CacheEvictor interface {
	Evict(topicID string)
}

type PromptBundleService interface {
	CacheEvictor
	// GetPromptBundle loads the topic's templates through the cache,
	// substitutes the resolved parameters and picks the model code for the
	// tier. resume selects the continuation slot for coaching topics.
	GetPromptBundle(ctx context.Context, topicID string, params map[string]interface{}, tier topics.Tier, resume bool) (*PromptBundle, error)
}

const defaultTemplateCacheTTL = 5 * time.Minute

type cacheEntry struct {
	text      string
	fetchedAt time.Time
}

type promptBundleService struct {
	log      *logger.Logger
	registry *topics.Registry
	records  topicstore.TopicRecordRepo
	blobs    gcp.PromptBlobStore

	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
	cache map[string]cacheEntry
	group singleflight.Group
}

func NewPromptBundleService(log *logger.Logger, registry *topics.Registry, records topicstore.TopicRecordRepo, blobs gcp.PromptBlobStore) PromptBundleService {
	return &promptBundleService{
		log:      log.With("service", "PromptBundleService"),
		registry: registry,
		records:  records,
		blobs:    blobs,
		ttl:      defaultTemplateCacheTTL,
		now:      time.Now,
		cache:    map[string]cacheEntry{},
	}
}

func (s *promptBundleService) GetPromptBundle(ctx context.Context, topicID string, params map[string]interface{}, tier topics.Tier, resume bool) (*PromptBundle, error) {
	rec, err := s.records.Get(ctx, nil, topicID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsActive {
		return nil, &topics.TopicNotFoundError{TopicID: topicID}
	}

	turnSlot := topics.SlotUser
	if topics.TopicType(rec.TopicType) == topics.TopicTypeConversationCoaching {
		turnSlot = topics.SlotInitiation
		if resume {
			turnSlot = topics.SlotResume
		}
	}

	slotRefs, err := rec.Slots()
	if err != nil {
		return nil, err
	}

	bundle := &PromptBundle{ModelCode: rec.ModelCodeForTier(tier)}
	for _, want := range []struct {
		slot topics.Slot
		dst  *string
	}{
		{topics.SlotSystem, &bundle.SystemText},
		{turnSlot, &bundle.TurnText},
	} {
		if _, configured := slotRefs[want.slot]; !configured {
			return nil, &topics.TopicNotFoundError{TopicID: topicID, Slot: string(want.slot)}
		}
		text, err := s.slotText(ctx, topicID, want.slot)
		if err != nil {
			return nil, err
		}
		*want.dst = topics.Substitute(text, params)
	}
	return bundle, nil
}

// slotText reads through the TTL cache, coalescing concurrent fills for
// the same (topic, slot) key.
func (s *promptBundleService) slotText(ctx context.Context, topicID string, slot topics.Slot) (string, error) {
	key := topicID + "/" + string(slot)

	s.mu.Lock()
	if entry, ok := s.cache[key]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		s.mu.Unlock()
		return entry.text, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		text, found, err := s.blobs.Get(ctx, topicID, slot)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &topics.TopicNotFoundError{TopicID: topicID, Slot: string(slot)}
		}
		s.mu.Lock()
		s.cache[key] = cacheEntry{text: text, fetchedAt: s.now()}
		s.mu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Evict drops every cached slot of a topic. Called eagerly on any
// administrative update or delete; TTL expiry covers out-of-band blob
// edits.
func (s *promptBundleService) Evict(topicID string) {
	prefix := topicID + "/"
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.cache {
		if strings.HasPrefix(key, prefix) {
			delete(s.cache, key)
		}
	}
}
