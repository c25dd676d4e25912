package topics

// TopicType distinguishes one-shot generations from multi-turn coaching
// conversations.
type TopicType string

const (
	TopicTypeSingleShot           TopicType = "single_shot"
	TopicTypeConversationCoaching TopicType = "conversation_coaching"
)

func ParseTopicType(s string) (TopicType, error) {
	switch TopicType(s) {
	case TopicTypeSingleShot:
		return TopicTypeSingleShot, nil
	case TopicTypeConversationCoaching:
		return TopicTypeConversationCoaching, nil
	}
	return "", &InvalidTopicTypeError{Value: s}
}

// Tier is the subscription level of a tenant. It gates which model code a
// topic resolves to and which topics a tenant may use at all.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

var tierRank = map[Tier]int{
	TierBasic:   1,
	TierPremium: 2,
}

func (t Tier) AtLeast(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

// Slot names one piece of a topic's prompt.
type Slot string

const (
	SlotSystem     Slot = "system"
	SlotUser       Slot = "user"
	SlotInitiation Slot = "initiation"
	SlotResume     Slot = "resume"
	SlotExtraction Slot = "extraction"
)

// ParameterRef declares one template parameter: its placeholder name, the
// source it resolves from, the dotted path into that source (empty means
// "look up by name"), and an optional override of the source-kind default
// for requiredness.
type ParameterRef struct {
	Name     string
	Source   SourceKind
	Path     string
	Required *bool
}

func (r ParameterRef) IsRequired() bool {
	if r.Required != nil {
		return *r.Required
	}
	return r.Source.RequiredByDefault()
}

// LookupPath is the effective projection path for the ref.
func (r ParameterRef) LookupPath() string {
	if r.Path != "" {
		return r.Path
	}
	return r.Name
}

// SeedDefaults carries the sampling configuration and template bodies used
// when the reconciler first materializes a topic record. Empty model codes
// fall back to the shared model-defaults source at seeding time.
type SeedDefaults struct {
	BasicModelCode   string
	PremiumModelCode string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	Bodies           map[Slot]string
}

// TopicDefinition is one entry of the desired-state catalog. Definitions
// are constructed at package init and never mutated afterwards; changing
// one means redeploying.
type TopicDefinition struct {
	TopicID      string
	Name         string
	Category     string
	TopicType    TopicType
	TierLevel    Tier
	Active       bool
	DisplayOrder int
	Params       []ParameterRef
	Slots        []Slot
	Seed         SeedDefaults
}

// HasParam reports whether name is a declared parameter of the definition.
func (d *TopicDefinition) HasParam(name string) bool {
	for _, p := range d.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// AllowsSlot reports whether the slot is legal for this topic.
func (d *TopicDefinition) AllowsSlot(s Slot) bool {
	for _, slot := range d.Slots {
		if slot == s {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool { return &b }

// Optional marks a ref as explicitly not required.
func Optional(r ParameterRef) ParameterRef {
	r.Required = boolPtr(false)
	return r
}

// Mandatory marks a ref as explicitly required.
func Mandatory(r ParameterRef) ParameterRef {
	r.Required = boolPtr(true)
	return r
}
