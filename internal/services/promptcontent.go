package services

import (
	"context"
	"time"

	"github.com/growthpilot/backend/internal/clients/gcp"
	"github.com/growthpilot/backend/internal/data/repos/topicstore"
	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

// PromptContentService is the admin surface over stored template bodies.
// Saves pass the declared-parameter gate; reads never do (a stale template
// must surface verbatim at runtime, not fail there).
type PromptContentService interface {
	Get(ctx context.Context, topicID string, slot topics.Slot) (string, error)
	Save(ctx context.Context, topicID string, slot topics.Slot, content, updatedBy string) error
	Delete(ctx context.Context, topicID string, slot topics.Slot) error
	ListSlots(ctx context.Context, topicID string) ([]topics.Slot, error)
}

type promptContentService struct {
	log      *logger.Logger
	registry *topics.Registry
	records  topicstore.TopicRecordRepo
	blobs    gcp.PromptBlobStore
	evictor  CacheEvictor
	now      func() time.Time
}

func NewPromptContentService(log *logger.Logger, registry *topics.Registry, records topicstore.TopicRecordRepo, blobs gcp.PromptBlobStore, evictor CacheEvictor) PromptContentService {
	return &promptContentService{
		log:      log.With("service", "PromptContentService"),
		registry: registry,
		records:  records,
		blobs:    blobs,
		evictor:  evictor,
		now:      time.Now,
	}
}

func (s *promptContentService) Get(ctx context.Context, topicID string, slot topics.Slot) (string, error) {
	content, found, err := s.blobs.Get(ctx, topicID, slot)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &topics.TopicNotFoundError{TopicID: topicID, Slot: string(slot)}
	}
	return content, nil
}

func (s *promptContentService) Save(ctx context.Context, topicID string, slot topics.Slot, content, updatedBy string) error {
	def, ok := s.registry.Get(topicID)
	if !ok {
		return &topics.TopicNotFoundError{TopicID: topicID}
	}
	if !def.AllowsSlot(slot) {
		return &topics.SlotNotAllowedError{TopicID: topicID, Slot: string(slot)}
	}
	// Gate against the registry declaration, not the persisted record: a
	// record edited to drop a parameter must not let stale placeholders in.
	if offenders := topics.UndeclaredPlaceholders(def, content); len(offenders) > 0 {
		return &topics.InvalidParameterError{TopicID: topicID, Names: offenders}
	}

	key, err := s.blobs.Save(ctx, topicID, slot, content)
	if err != nil {
		return err
	}

	rec, err := s.records.Get(ctx, nil, topicID)
	if err != nil {
		return err
	}
	if rec != nil {
		if err := rec.SetSlot(slot, domain.PromptSlotRef{
			BlobBucket: s.blobs.Bucket(),
			BlobKey:    key,
			UpdatedAt:  s.now().UTC(),
			UpdatedBy:  updatedBy,
		}); err != nil {
			return err
		}
		if err := s.records.Update(ctx, nil, rec); err != nil {
			return err
		}
	}

	if s.evictor != nil {
		s.evictor.Evict(topicID)
	}
	return nil
}

func (s *promptContentService) Delete(ctx context.Context, topicID string, slot topics.Slot) error {
	if err := s.blobs.Delete(ctx, topicID, slot); err != nil {
		return err
	}
	rec, err := s.records.Get(ctx, nil, topicID)
	if err != nil {
		return err
	}
	if rec != nil {
		if err := rec.RemoveSlot(slot); err != nil {
			return err
		}
		if err := s.records.Update(ctx, nil, rec); err != nil {
			return err
		}
	}
	if s.evictor != nil {
		s.evictor.Evict(topicID)
	}
	return nil
}

func (s *promptContentService) ListSlots(ctx context.Context, topicID string) ([]topics.Slot, error) {
	return s.blobs.ListSlots(ctx, topicID)
}
