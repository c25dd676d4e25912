package services

import (
	"context"
	"sort"

	"github.com/growthpilot/backend/internal/clients/gcp"
	"github.com/growthpilot/backend/internal/clients/redis"
	"github.com/growthpilot/backend/internal/data/repos/topicstore"
	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

// TopicService is the administrative surface over topic records.
type TopicService interface {
	Get(ctx context.Context, topicID string) (*domain.TopicRecord, error)
	Create(ctx context.Context, record *domain.TopicRecord) (*domain.TopicRecord, error)
	Patch(ctx context.Context, topicID string, patch *domain.TopicPatch) (*domain.TopicRecord, error)
	Delete(ctx context.Context, topicID string, hard bool) error
	List(ctx context.Context, includeInactive bool) ([]*domain.TopicRecord, error)
	ListByType(ctx context.Context, topicType topics.TopicType, includeInactive bool) ([]*domain.TopicRecord, error)
	// ListWithRegistryDefaults unions persisted records with synthesized
	// read-only defaults for every declared topic not yet configured, so
	// admin listings always show the full catalog.
	ListWithRegistryDefaults(ctx context.Context, includeInactive bool) ([]*domain.TopicRecord, error)
}

type topicService struct {
	log      *logger.Logger
	registry *topics.Registry
	records  topicstore.TopicRecordRepo
	blobs    gcp.PromptBlobStore
	defaults redis.ModelDefaultsSource
	evictor  CacheEvictor
}

func NewTopicService(log *logger.Logger, registry *topics.Registry, records topicstore.TopicRecordRepo, blobs gcp.PromptBlobStore, defaults redis.ModelDefaultsSource, evictor CacheEvictor) TopicService {
	return &topicService{
		log:      log.With("service", "TopicService"),
		registry: registry,
		records:  records,
		blobs:    blobs,
		defaults: defaults,
		evictor:  evictor,
	}
}

func (s *topicService) Get(ctx context.Context, topicID string) (*domain.TopicRecord, error) {
	rec, err := s.records.Get(ctx, nil, topicID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &topics.TopicNotFoundError{TopicID: topicID}
	}
	return rec, nil
}

func (s *topicService) Create(ctx context.Context, record *domain.TopicRecord) (*domain.TopicRecord, error) {
	if err := s.records.Create(ctx, nil, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Patch applies a partial update against a copy of the stored record.
// Validation runs on the patched copy; an invalid patch blocks the write.
func (s *topicService) Patch(ctx context.Context, topicID string, patch *domain.TopicPatch) (*domain.TopicRecord, error) {
	rec, err := s.Get(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if patch == nil || patch.IsZero() {
		return rec, nil
	}
	updated := rec.Clone()
	patch.Apply(updated)
	if err := s.records.Update(ctx, nil, updated); err != nil {
		return nil, err
	}
	if s.evictor != nil {
		s.evictor.Evict(topicID)
	}
	return updated, nil
}

func (s *topicService) Delete(ctx context.Context, topicID string, hard bool) error {
	if !hard {
		if err := s.records.SoftDelete(ctx, nil, topicID); err != nil {
			return err
		}
		if s.evictor != nil {
			s.evictor.Evict(topicID)
		}
		return nil
	}

	rec, err := s.Get(ctx, topicID)
	if err != nil {
		return err
	}
	slotRefs, err := rec.Slots()
	if err != nil {
		return err
	}
	for slot := range slotRefs {
		if err := s.blobs.Delete(ctx, topicID, slot); err != nil {
			return err
		}
	}
	if err := s.records.HardDelete(ctx, nil, topicID); err != nil {
		return err
	}
	if s.evictor != nil {
		s.evictor.Evict(topicID)
	}
	return nil
}

func (s *topicService) List(ctx context.Context, includeInactive bool) ([]*domain.TopicRecord, error) {
	return s.records.List(ctx, nil, includeInactive)
}

func (s *topicService) ListByType(ctx context.Context, topicType topics.TopicType, includeInactive bool) ([]*domain.TopicRecord, error) {
	if _, err := topics.ParseTopicType(string(topicType)); err != nil {
		return nil, err
	}
	return s.records.ListByType(ctx, nil, topicType, includeInactive)
}

func (s *topicService) ListWithRegistryDefaults(ctx context.Context, includeInactive bool) ([]*domain.TopicRecord, error) {
	persisted, err := s.records.List(ctx, nil, includeInactive)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(persisted))
	for _, rec := range persisted {
		present[rec.TopicID] = struct{}{}
	}

	out := append([]*domain.TopicRecord{}, persisted...)
	codes := s.defaults.Defaults(ctx)
	for _, def := range s.registry.All() {
		if _, ok := present[def.TopicID]; ok {
			continue
		}
		if !def.Active && !includeInactive {
			continue
		}
		out = append(out, synthesizeDefault(def, codes))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out, nil
}

// synthesizeDefault builds the read-only default view of an unconfigured
// declared topic.
func synthesizeDefault(def *topics.TopicDefinition, codes redis.ModelDefaults) *domain.TopicRecord {
	basic := def.Seed.BasicModelCode
	if basic == "" {
		basic = codes.Basic
	}
	premium := def.Seed.PremiumModelCode
	if premium == "" {
		premium = codes.Premium
	}
	return &domain.TopicRecord{
		TopicID:          def.TopicID,
		TopicName:        def.Name,
		Category:         def.Category,
		TopicType:        string(def.TopicType),
		TierLevel:        string(def.TierLevel),
		IsActive:         def.Active,
		BasicModelCode:   basic,
		PremiumModelCode: premium,
		Temperature:      def.Seed.Temperature,
		MaxTokens:        def.Seed.MaxTokens,
		TopP:             def.Seed.TopP,
		FrequencyPenalty: def.Seed.FrequencyPenalty,
		PresencePenalty:  def.Seed.PresencePenalty,
		DisplayOrder:     def.DisplayOrder,
		CreatedBy:        systemActor,
	}
}
