package services

import (
	"context"
	"errors"
	"testing"

	"github.com/growthpilot/backend/internal/domain/topics"
)

func resolverDef() *topics.TopicDefinition {
	return &topics.TopicDefinition{
		TopicID:   "goal_creation",
		Name:      "Goal Creation",
		TopicType: topics.TopicTypeSingleShot,
		TierLevel: topics.TierBasic,
		Active:    true,
		Params: []topics.ParameterRef{
			{Name: "goal_id", Source: topics.SourceRequest},
			{Name: "timeframe", Source: topics.SourceRequest, Required: boolp(false)},
			{Name: "company_name", Source: topics.SourceOnboarding, Path: "company.name"},
			{Name: "goal", Source: topics.SourceGoal},
			{Name: "goal_title", Source: topics.SourceGoal, Path: "title"},
			{Name: "alignment_score", Source: topics.SourceComputed},
		},
		Slots: []topics.Slot{topics.SlotSystem, topics.SlotUser},
	}
}

func boolp(b bool) *bool { return &b }

func TestResolveAllSources(t *testing.T) {
	r := NewParameterResolver(testLogger(t))

	goalFetches := 0
	rc := &RequestContext{
		Payload:  map[string]interface{}{"goal_id": "g-1", "timeframe": "Q4"},
		Computed: map[string]interface{}{"alignment_score": 0.83},
		Accessors: map[topics.SourceKind]Accessor{
			topics.SourceOnboarding: func(context.Context) (interface{}, error) {
				return map[string]interface{}{
					"company": map[string]interface{}{"name": "Acme"},
				}, nil
			},
			topics.SourceGoal: func(context.Context) (interface{}, error) {
				goalFetches++
				return map[string]interface{}{"title": "Grow", "progress": 0.4}, nil
			},
		},
	}

	params, err := r.Resolve(context.Background(), resolverDef(), rc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if params["goal_id"] != "g-1" || params["timeframe"] != "Q4" {
		t.Errorf("request params: %v", params)
	}
	if params["company_name"] != "Acme" {
		t.Errorf("onboarding projection: %v", params["company_name"])
	}
	if params["goal_title"] != "Grow" {
		t.Errorf("entity projection: %v", params["goal_title"])
	}
	if params["alignment_score"] != 0.83 {
		t.Errorf("computed param: %v", params["alignment_score"])
	}
	// Two refs project out of the goal entity; it is fetched once.
	if goalFetches != 1 {
		t.Errorf("goal entity fetched %d times", goalFetches)
	}
}

func TestResolveMissingRequiredRequestParam(t *testing.T) {
	r := NewParameterResolver(testLogger(t))
	rc := &RequestContext{
		Payload: map[string]interface{}{"timeframe": "Q4"},
		Accessors: map[topics.SourceKind]Accessor{
			topics.SourceGoal: func(context.Context) (interface{}, error) {
				return map[string]interface{}{"title": "Grow"}, nil
			},
		},
	}
	_, err := r.Resolve(context.Background(), resolverDef(), rc)
	var missing *topics.MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %v", err)
	}
	if missing.Name != "goal_id" {
		t.Fatalf("missing name = %q", missing.Name)
	}
}

func TestResolveOmitsMissingOptionalParams(t *testing.T) {
	r := NewParameterResolver(testLogger(t))
	// No onboarding accessor, no computed value, no timeframe: all optional.
	rc := &RequestContext{
		Payload: map[string]interface{}{"goal_id": "g-1"},
		Accessors: map[topics.SourceKind]Accessor{
			topics.SourceGoal: func(context.Context) (interface{}, error) {
				return map[string]interface{}{"title": "Grow"}, nil
			},
		},
	}
	params, err := r.Resolve(context.Background(), resolverDef(), rc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, absent := range []string{"timeframe", "company_name", "alignment_score"} {
		if _, ok := params[absent]; ok {
			t.Errorf("optional param %q should be absent, got %v", absent, params[absent])
		}
	}
}

func TestResolveMissingRequiredEntity(t *testing.T) {
	r := NewParameterResolver(testLogger(t))
	rc := &RequestContext{
		Payload:   map[string]interface{}{"goal_id": "g-1"},
		Accessors: map[topics.SourceKind]Accessor{},
	}
	_, err := r.Resolve(context.Background(), resolverDef(), rc)
	var missing *topics.MissingParameterError
	if !errors.As(err, &missing) || missing.Name != "goal" {
		t.Fatalf("expected missing goal, got %v", err)
	}
}

func TestResolvePropagatesAccessorError(t *testing.T) {
	r := NewParameterResolver(testLogger(t))
	boom := errors.New("db down")
	rc := &RequestContext{
		Payload: map[string]interface{}{"goal_id": "g-1"},
		Accessors: map[topics.SourceKind]Accessor{
			topics.SourceGoal: func(context.Context) (interface{}, error) { return nil, boom },
		},
	}
	_, err := r.Resolve(context.Background(), resolverDef(), rc)
	if !errors.Is(err, boom) {
		t.Fatalf("accessor error not propagated: %v", err)
	}
}

func TestResolveWholeEntityWithEmptyPath(t *testing.T) {
	r := NewParameterResolver(testLogger(t))
	def := &topics.TopicDefinition{
		TopicID:   "t",
		TopicType: topics.TopicTypeSingleShot,
		Params: []topics.ParameterRef{
			{Name: "goal", Source: topics.SourceGoal},
		},
		Slots: []topics.Slot{topics.SlotSystem},
	}
	entity := map[string]interface{}{"title": "Grow"}
	rc := &RequestContext{
		Accessors: map[topics.SourceKind]Accessor{
			topics.SourceGoal: func(context.Context) (interface{}, error) { return entity, nil },
		},
	}
	params, err := r.Resolve(context.Background(), def, rc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, ok := params["goal"].(map[string]interface{})
	if !ok || got["title"] != "Grow" {
		t.Fatalf("whole entity = %v", params["goal"])
	}
}
