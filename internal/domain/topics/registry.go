package topics

import (
	"fmt"
	"sort"
)

// Registry is the immutable desired-state catalog. It is built once from
// the static definitions in catalog.go; there is no runtime mutation path.
type Registry struct {
	byID    map[string]*TopicDefinition
	ordered []*TopicDefinition
}

// NewRegistry validates and indexes a set of definitions. It fails on
// duplicate topic ids, duplicate parameter names within a definition,
// unknown source kinds, or seed bodies for slots the topic does not allow.
func NewRegistry(defs []*TopicDefinition) (*Registry, error) {
	byID := make(map[string]*TopicDefinition, len(defs))
	ordered := make([]*TopicDefinition, 0, len(defs))
	for _, d := range defs {
		if d.TopicID == "" {
			return nil, fmt.Errorf("topic definition with empty topic_id")
		}
		if _, dup := byID[d.TopicID]; dup {
			return nil, fmt.Errorf("duplicate topic_id %q in catalog", d.TopicID)
		}
		if _, err := ParseTopicType(string(d.TopicType)); err != nil {
			return nil, fmt.Errorf("topic %q: %w", d.TopicID, err)
		}
		if len(d.Slots) == 0 {
			return nil, fmt.Errorf("topic %q declares no template slots", d.TopicID)
		}
		seen := make(map[string]struct{}, len(d.Params))
		for _, p := range d.Params {
			if p.Name == "" {
				return nil, fmt.Errorf("topic %q has a parameter with no name", d.TopicID)
			}
			if !p.Source.Valid() {
				return nil, fmt.Errorf("topic %q parameter %q has unknown source kind %q",
					d.TopicID, p.Name, p.Source)
			}
			if _, dup := seen[p.Name]; dup {
				return nil, fmt.Errorf("topic %q declares parameter %q twice", d.TopicID, p.Name)
			}
			seen[p.Name] = struct{}{}
		}
		for slot := range d.Seed.Bodies {
			if !d.AllowsSlot(slot) {
				return nil, fmt.Errorf("topic %q seeds slot %q it does not allow", d.TopicID, slot)
			}
		}
		byID[d.TopicID] = d
		ordered = append(ordered, d)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})
	return &Registry{byID: byID, ordered: ordered}, nil
}

func (r *Registry) Get(topicID string) (*TopicDefinition, bool) {
	d, ok := r.byID[topicID]
	return d, ok
}

func (r *Registry) Has(topicID string) bool {
	_, ok := r.byID[topicID]
	return ok
}

// All returns the definitions sorted by display order. Callers must not
// mutate the returned definitions.
func (r *Registry) All() []*TopicDefinition {
	out := make([]*TopicDefinition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func (r *Registry) Len() int { return len(r.ordered) }

var defaultRegistry = mustRegistry()

func mustRegistry() *Registry {
	reg, err := NewRegistry(catalog())
	if err != nil {
		panic(fmt.Sprintf("topic catalog is invalid: %v", err))
	}
	return reg
}

// Default returns the process-wide catalog built from catalog.go.
func Default() *Registry { return defaultRegistry }
