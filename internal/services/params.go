package services

import (
	"context"

	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

// Accessor fetches one external entity for the current request. The caller
// wires one closure per source kind it can serve; the resolver never
// reaches into tenant persistence itself.
type Accessor func(ctx context.Context) (interface{}, error)

// RequestContext carries everything a topic's parameters can resolve from:
// the raw request payload, values the caller computed earlier in the same
// request, and the entity accessors.
type RequestContext struct {
	Payload   map[string]interface{}
	Computed  map[string]interface{}
	Accessors map[topics.SourceKind]Accessor
}

type ParameterResolver interface {
	Resolve(ctx context.Context, def *topics.TopicDefinition, rc *RequestContext) (map[string]interface{}, error)
}

type parameterResolver struct {
	log *logger.Logger
}

func NewParameterResolver(log *logger.Logger) ParameterResolver {
	return &parameterResolver{log: log.With("service", "ParameterResolver")}
}

// Resolve walks the definition's parameter refs in declaration order.
// Sources are independent; no ref may depend on another ref's resolved
// value. A missing required ref aborts with MissingParameterError; a
// missing optional ref is simply absent from the output map. The first
// accessor failure propagates immediately.
func (r *parameterResolver) Resolve(ctx context.Context, def *topics.TopicDefinition, rc *RequestContext) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(def.Params))

	// Entities are fetched at most once per source kind per request, even
	// when several refs project different paths out of the same entity.
	fetched := map[topics.SourceKind]interface{}{}

	for _, ref := range def.Params {
		val, ok, err := r.resolveRef(ctx, ref, rc, fetched)
		if err != nil {
			return nil, err
		}
		if !ok {
			if ref.IsRequired() {
				return nil, &topics.MissingParameterError{TopicID: def.TopicID, Name: ref.Name}
			}
			continue
		}
		out[ref.Name] = val
	}
	return out, nil
}

func (r *parameterResolver) resolveRef(ctx context.Context, ref topics.ParameterRef, rc *RequestContext, fetched map[topics.SourceKind]interface{}) (interface{}, bool, error) {
	switch ref.Source {
	case topics.SourceRequest:
		if rc.Payload == nil {
			return nil, false, nil
		}
		v, ok := topics.ProjectPath(rc.Payload, ref.LookupPath())
		return v, ok, nil

	case topics.SourceComputed:
		if rc.Computed == nil {
			return nil, false, nil
		}
		v, ok := topics.ProjectPath(rc.Computed, ref.LookupPath())
		return v, ok, nil

	case topics.SourceUser, topics.SourceOnboarding,
		topics.SourceGoal, topics.SourceGoals,
		topics.SourceMeasure, topics.SourceMeasures,
		topics.SourceAction, topics.SourceIssue,
		topics.SourceConversation, topics.SourceWebsite:
		entity, ok, err := r.fetchEntity(ctx, ref.Source, rc, fetched)
		if err != nil || !ok {
			return nil, false, err
		}
		// An empty path on an entity ref means "the whole entity".
		v, ok := topics.ProjectPath(entity, ref.Path)
		return v, ok, nil

	default:
		// The enum is closed; an unknown kind here is a catalog bug that
		// NewRegistry already rejects.
		return nil, false, nil
	}
}

func (r *parameterResolver) fetchEntity(ctx context.Context, kind topics.SourceKind, rc *RequestContext, fetched map[topics.SourceKind]interface{}) (interface{}, bool, error) {
	if v, done := fetched[kind]; done {
		return v, v != nil, nil
	}
	acc := rc.Accessors[kind]
	if acc == nil {
		fetched[kind] = nil
		return nil, false, nil
	}
	entity, err := acc(ctx)
	if err != nil {
		return nil, false, err
	}
	fetched[kind] = entity
	return entity, entity != nil, nil
}
