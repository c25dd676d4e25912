package domain

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/growthpilot/backend/internal/domain/topics"
)

// PromptSlotRef points a slot at its stored blob. At most one ref per slot;
// setting a slot that already exists replaces it.
type PromptSlotRef struct {
	BlobBucket string    `json:"blob_bucket"`
	BlobKey    string    `json:"blob_key"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedBy  string    `json:"updated_by"`
}

// TopicRecord is the persisted, mutable configuration of a topic. The
// registry says what should exist; this record says how the topic currently
// behaves. Numeric fields are validated on every construction and update.
type TopicRecord struct {
	TopicID          string         `gorm:"column:topic_id;primaryKey" json:"topic_id"`
	TopicName        string         `gorm:"column:topic_name;not null" json:"topic_name"`
	Category         string         `gorm:"column:category;index" json:"category"`
	TopicType        string         `gorm:"column:topic_type;not null;index" json:"topic_type"`
	TierLevel        string         `gorm:"column:tier_level;not null;default:basic" json:"tier_level"`
	IsActive         bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	BasicModelCode   string         `gorm:"column:basic_model_code;not null" json:"basic_model_code"`
	PremiumModelCode string         `gorm:"column:premium_model_code;not null" json:"premium_model_code"`
	Temperature      float64        `gorm:"column:temperature;not null;default:0.7" json:"temperature"`
	MaxTokens        int            `gorm:"column:max_tokens;not null;default:1024" json:"max_tokens"`
	TopP             float64        `gorm:"column:top_p;not null;default:1" json:"top_p"`
	FrequencyPenalty float64        `gorm:"column:frequency_penalty;not null;default:0" json:"frequency_penalty"`
	PresencePenalty  float64        `gorm:"column:presence_penalty;not null;default:0" json:"presence_penalty"`
	PromptSlots      datatypes.JSON `gorm:"column:prompt_slots;type:jsonb" json:"prompt_slots"`
	DisplayOrder     int            `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt        time.Time      `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	CreatedBy        string         `gorm:"column:created_by;not null;default:system" json:"created_by"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (TopicRecord) TableName() string { return "topic_record" }

// Validate enforces the sampling/model ranges. A violation blocks the
// write; nothing is ever clamped silently.
func (r *TopicRecord) Validate() error {
	if _, err := topics.ParseTopicType(r.TopicType); err != nil {
		return err
	}
	err := validation.ValidateStruct(r,
		validation.Field(&r.TopicID, validation.Required),
		validation.Field(&r.TopicName, validation.Required),
		validation.Field(&r.TierLevel, validation.Required,
			validation.In(string(topics.TierBasic), string(topics.TierPremium))),
		validation.Field(&r.BasicModelCode, validation.Required),
		validation.Field(&r.PremiumModelCode, validation.Required),
		validation.Field(&r.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&r.MaxTokens, validation.Required, validation.Min(1)),
		validation.Field(&r.TopP, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&r.FrequencyPenalty, validation.Min(-2.0), validation.Max(2.0)),
		validation.Field(&r.PresencePenalty, validation.Min(-2.0), validation.Max(2.0)),
	)
	if err != nil {
		return &topics.InvalidModelConfigurationError{TopicID: r.TopicID, Err: err}
	}
	return nil
}

// Slots decodes the prompt_slots column. A nil column is an empty map.
func (r *TopicRecord) Slots() (map[topics.Slot]PromptSlotRef, error) {
	out := map[topics.Slot]PromptSlotRef{}
	if len(r.PromptSlots) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.PromptSlots, &out); err != nil {
		return nil, fmt.Errorf("decode prompt_slots for %q: %w", r.TopicID, err)
	}
	return out, nil
}

// SetSlot inserts or replaces the ref for a slot.
func (r *TopicRecord) SetSlot(slot topics.Slot, ref PromptSlotRef) error {
	slots, err := r.Slots()
	if err != nil {
		return err
	}
	slots[slot] = ref
	return r.storeSlots(slots)
}

// RemoveSlot drops the ref for a slot if present.
func (r *TopicRecord) RemoveSlot(slot topics.Slot) error {
	slots, err := r.Slots()
	if err != nil {
		return err
	}
	delete(slots, slot)
	return r.storeSlots(slots)
}

func (r *TopicRecord) storeSlots(slots map[topics.Slot]PromptSlotRef) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode prompt_slots for %q: %w", r.TopicID, err)
	}
	r.PromptSlots = datatypes.JSON(raw)
	return nil
}

// ModelCodeForTier picks the model the caller's tier qualifies for.
func (r *TopicRecord) ModelCodeForTier(tier topics.Tier) string {
	if tier.AtLeast(topics.TierPremium) {
		return r.PremiumModelCode
	}
	return r.BasicModelCode
}

// Clone returns a deep copy safe to mutate independently.
func (r *TopicRecord) Clone() *TopicRecord {
	cp := *r
	if r.PromptSlots != nil {
		cp.PromptSlots = make(datatypes.JSON, len(r.PromptSlots))
		copy(cp.PromptSlots, r.PromptSlots)
	}
	return &cp
}
