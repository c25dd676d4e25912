package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/growthpilot/backend/internal/clients/gcp"
	"github.com/growthpilot/backend/internal/clients/redis"
	"github.com/growthpilot/backend/internal/data/repos/topicstore"
	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

const systemActor = "system"

// SeedError records a per-topic failure without aborting the run.
type SeedError struct {
	TopicID string `json:"topic_id"`
	Message string `json:"message"`
}

// SeedingResult is the run-scoped outcome of one reconcile pass.
type SeedingResult struct {
	Created     []string    `json:"created"`
	Updated     []string    `json:"updated"`
	Skipped     []string    `json:"skipped"`
	Deactivated []string    `json:"deactivated"`
	Errors      []SeedError `json:"errors"`
	DryRun      bool        `json:"dry_run"`
}

// Success reports whether the run completed with no per-topic failures.
func (r *SeedingResult) Success() bool { return len(r.Errors) == 0 }

type MissingPrompt struct {
	TopicID string `json:"topic_id"`
	Slot    string `json:"slot"`
}

// ValidationReport is the read-only drift report.
type ValidationReport struct {
	MissingTopics     []string        `json:"missing_topics"`
	OrphanedTopics    []string        `json:"orphaned_topics"`
	MissingPrompts    []MissingPrompt `json:"missing_prompts"`
	InvalidParameters []string        `json:"invalid_parameters"`
}

// Clean reports whether no drift was found.
func (r *ValidationReport) Clean() bool {
	return len(r.MissingTopics) == 0 && len(r.OrphanedTopics) == 0 &&
		len(r.MissingPrompts) == 0 && len(r.InvalidParameters) == 0
}

// ReconcilerService brings the persisted topic records and their prompt
// blobs toward the code-defined registry.
type ReconcilerService interface {
	Reconcile(ctx context.Context, forceUpdate, dryRun bool) *SeedingResult
	SeedOne(ctx context.Context, topicID string, forceUpdate bool) (bool, error)
	Validate(ctx context.Context) (*ValidationReport, error)
}

type reconcilerService struct {
	log      *logger.Logger
	registry *topics.Registry
	records  topicstore.TopicRecordRepo
	blobs    gcp.PromptBlobStore
	defaults redis.ModelDefaultsSource
	evictor  CacheEvictor
	now      func() time.Time
}

func NewReconcilerService(log *logger.Logger, registry *topics.Registry, records topicstore.TopicRecordRepo, blobs gcp.PromptBlobStore, defaults redis.ModelDefaultsSource, evictor CacheEvictor) ReconcilerService {
	return &reconcilerService{
		log:      log.With("service", "ReconcilerService"),
		registry: registry,
		records:  records,
		blobs:    blobs,
		defaults: defaults,
		evictor:  evictor,
		now:      time.Now,
	}
}

type seedOutcome int

const (
	outcomeCreated seedOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

// Reconcile runs the per-definition pass and then the orphan sweep. The
// sweep runs strictly after every create/update so it can never deactivate
// a topic the same pass just materialized. A failure on one topic is
// recorded and the loop moves on.
func (s *reconcilerService) Reconcile(ctx context.Context, forceUpdate, dryRun bool) *SeedingResult {
	res := &SeedingResult{
		Created:     []string{},
		Updated:     []string{},
		Skipped:     []string{},
		Deactivated: []string{},
		Errors:      []SeedError{},
		DryRun:      dryRun,
	}
	s.log.Info("reconcile started", "force_update", forceUpdate, "dry_run", dryRun,
		"definitions", s.registry.Len())

	for _, def := range s.registry.All() {
		outcome, err := s.seedDefinition(ctx, def, forceUpdate, dryRun)
		if err != nil {
			s.log.Error("seeding failed", "topic_id", def.TopicID, "error", err)
			res.Errors = append(res.Errors, SeedError{TopicID: def.TopicID, Message: err.Error()})
			continue
		}
		switch outcome {
		case outcomeCreated:
			res.Created = append(res.Created, def.TopicID)
		case outcomeUpdated:
			res.Updated = append(res.Updated, def.TopicID)
		case outcomeSkipped:
			res.Skipped = append(res.Skipped, def.TopicID)
		}
	}

	s.sweepOrphans(ctx, dryRun, res)

	s.log.Info("reconcile finished",
		"created", len(res.Created), "updated", len(res.Updated),
		"skipped", len(res.Skipped), "deactivated", len(res.Deactivated),
		"errors", len(res.Errors))
	return res
}

// SeedOne applies the same logic to a single topic_id for targeted repair.
// The returned bool says whether anything was written.
func (s *reconcilerService) SeedOne(ctx context.Context, topicID string, forceUpdate bool) (bool, error) {
	def, ok := s.registry.Get(topicID)
	if !ok {
		return false, &topics.TopicNotFoundError{TopicID: topicID}
	}
	outcome, err := s.seedDefinition(ctx, def, forceUpdate, false)
	if err != nil {
		return false, err
	}
	return outcome != outcomeSkipped, nil
}

func (s *reconcilerService) seedDefinition(ctx context.Context, def *topics.TopicDefinition, forceUpdate, dryRun bool) (seedOutcome, error) {
	rec, err := s.records.Get(ctx, nil, def.TopicID)
	if err != nil {
		return outcomeSkipped, err
	}

	if rec == nil {
		if dryRun {
			return outcomeCreated, nil
		}
		if err := s.createFromDefinition(ctx, def); err != nil {
			var dup *topics.DuplicateTopicError
			if errors.As(err, &dup) {
				// Another replica won the first-write race; the record
				// exists now, which is all this pass wanted.
				return outcomeSkipped, nil
			}
			return outcomeSkipped, err
		}
		return outcomeCreated, nil
	}

	if !forceUpdate {
		return outcomeSkipped, nil
	}
	if dryRun {
		return outcomeUpdated, nil
	}
	if err := s.forceUpdate(ctx, def, rec); err != nil {
		return outcomeSkipped, err
	}
	return outcomeUpdated, nil
}

func (s *reconcilerService) createFromDefinition(ctx context.Context, def *topics.TopicDefinition) error {
	rec := s.buildRecord(ctx, def)
	if err := s.uploadSeedBodies(ctx, def, rec); err != nil {
		return err
	}
	return s.records.Create(ctx, nil, rec)
}

// forceUpdate overwrites the mutable configuration from the seed while
// preserving created_at/created_by, and re-uploads every non-empty seed
// body.
func (s *reconcilerService) forceUpdate(ctx context.Context, def *topics.TopicDefinition, existing *domain.TopicRecord) error {
	rec := s.buildRecord(ctx, def)
	rec.CreatedAt = existing.CreatedAt
	rec.CreatedBy = existing.CreatedBy
	rec.PromptSlots = existing.Clone().PromptSlots
	if err := s.uploadSeedBodies(ctx, def, rec); err != nil {
		return err
	}
	if err := s.records.Update(ctx, nil, rec); err != nil {
		return err
	}
	if s.evictor != nil {
		s.evictor.Evict(def.TopicID)
	}
	return nil
}

func (s *reconcilerService) buildRecord(ctx context.Context, def *topics.TopicDefinition) *domain.TopicRecord {
	codes := s.defaults.Defaults(ctx)
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

func (s *reconcilerService) uploadSeedBodies(ctx context.Context, def *topics.TopicDefinition, rec *domain.TopicRecord) error {
	slots := make([]topics.Slot, 0, len(def.Seed.Bodies))
	for slot := range def.Seed.Bodies {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	for _, slot := range slots {
		body := def.Seed.Bodies[slot]
		if body == "" {
			continue
		}
		key, err := s.blobs.Save(ctx, def.TopicID, slot, body)
		if err != nil {
			return err
		}
		if err := rec.SetSlot(slot, domain.PromptSlotRef{
			BlobBucket: s.blobs.Bucket(),
			BlobKey:    key,
			UpdatedAt:  s.now().UTC(),
			UpdatedBy:  systemActor,
		}); err != nil {
			return err
		}
	}
	return nil
}

// sweepOrphans soft-deletes every active persisted record whose topic_id
// the registry no longer lists.
func (s *reconcilerService) sweepOrphans(ctx context.Context, dryRun bool, res *SeedingResult) {
	recs, err := s.records.List(ctx, nil, false)
	if err != nil {
		res.Errors = append(res.Errors, SeedError{TopicID: "_orphan_sweep", Message: err.Error()})
		return
	}
	for _, rec := range recs {
		if s.registry.Has(rec.TopicID) {
			continue
		}
		if !dryRun {
			if err := s.records.SoftDelete(ctx, nil, rec.TopicID); err != nil {
				res.Errors = append(res.Errors, SeedError{TopicID: rec.TopicID, Message: err.Error()})
				continue
			}
			if s.evictor != nil {
				s.evictor.Evict(rec.TopicID)
			}
			s.log.Warn("deactivated orphaned topic", "topic_id", rec.TopicID)
		}
		res.Deactivated = append(res.Deactivated, rec.TopicID)
	}
}

// Validate computes the drift report without mutating anything.
func (s *reconcilerService) Validate(ctx context.Context) (*ValidationReport, error) {
	report := &ValidationReport{
		MissingTopics:     []string{},
		OrphanedTopics:    []string{},
		MissingPrompts:    []MissingPrompt{},
		InvalidParameters: []string{},
	}

	recs, err := s.records.List(ctx, nil, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.TopicRecord, len(recs))
	for _, rec := range recs {
		byID[rec.TopicID] = rec
	}

	for _, def := range s.registry.All() {
		if _, present := byID[def.TopicID]; !present {
			report.MissingTopics = append(report.MissingTopics, def.TopicID)
		}
		for slot, body := range def.Seed.Bodies {
			if offenders := topics.UndeclaredPlaceholders(def, body); len(offenders) > 0 {
				report.InvalidParameters = append(report.InvalidParameters,
					fmt.Sprintf("topic %s slot %s references undeclared parameters: %v",
						def.TopicID, slot, offenders))
			}
		}
	}

	for _, rec := range recs {
		if !s.registry.Has(rec.TopicID) && rec.IsActive {
			report.OrphanedTopics = append(report.OrphanedTopics, rec.TopicID)
		}
		slotRefs, err := rec.Slots()
		if err != nil {
			report.InvalidParameters = append(report.InvalidParameters,
				fmt.Sprintf("topic %s: %v", rec.TopicID, err))
			continue
		}
		for slot := range slotRefs {
			exists, err := s.blobs.Exists(ctx, rec.TopicID, slot)
			if err != nil {
				return nil, err
			}
			if !exists {
				report.MissingPrompts = append(report.MissingPrompts, MissingPrompt{
					TopicID: rec.TopicID,
					Slot:    string(slot),
				})
			}
		}
	}

	sort.Strings(report.MissingTopics)
	sort.Strings(report.OrphanedTopics)
	sort.Strings(report.InvalidParameters)
	sort.Slice(report.MissingPrompts, func(i, j int) bool {
		if report.MissingPrompts[i].TopicID != report.MissingPrompts[j].TopicID {
			return report.MissingPrompts[i].TopicID < report.MissingPrompts[j].TopicID
		}
		return report.MissingPrompts[i].Slot < report.MissingPrompts[j].Slot
	})
	return report, nil
}
