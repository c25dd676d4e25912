package domain

// TopicPatch is a partial admin update. Every field is optional; Apply
// copies the set fields onto a record field-by-field. No reflection, no
// map-of-anything updates.
type TopicPatch struct {
	TopicName        *string  `json:"topic_name,omitempty"`
	Category         *string  `json:"category,omitempty"`
	TierLevel        *string  `json:"tier_level,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
	BasicModelCode   *string  `json:"basic_model_code,omitempty"`
	PremiumModelCode *string  `json:"premium_model_code,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	DisplayOrder     *int     `json:"display_order,omitempty"`
}

// IsZero reports whether the patch sets nothing.
func (p *TopicPatch) IsZero() bool {
	return p.TopicName == nil && p.Category == nil && p.TierLevel == nil &&
		p.IsActive == nil && p.BasicModelCode == nil && p.PremiumModelCode == nil &&
		p.Temperature == nil && p.MaxTokens == nil && p.TopP == nil &&
		p.FrequencyPenalty == nil && p.PresencePenalty == nil && p.DisplayOrder == nil
}

// Apply writes the set fields onto r. The caller is expected to pass a
// copy and to Validate afterwards.
func (p *TopicPatch) Apply(r *TopicRecord) {
	if p.TopicName != nil {
		r.TopicName = *p.TopicName
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.TierLevel != nil {
		r.TierLevel = *p.TierLevel
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	if p.BasicModelCode != nil {
		r.BasicModelCode = *p.BasicModelCode
	}
	if p.PremiumModelCode != nil {
		r.PremiumModelCode = *p.PremiumModelCode
	}
	if p.Temperature != nil {
		r.Temperature = *p.Temperature
	}
	if p.MaxTokens != nil {
		r.MaxTokens = *p.MaxTokens
	}
	if p.TopP != nil {
		r.TopP = *p.TopP
	}
	if p.FrequencyPenalty != nil {
		r.FrequencyPenalty = *p.FrequencyPenalty
	}
	if p.PresencePenalty != nil {
		r.PresencePenalty = *p.PresencePenalty
	}
	if p.DisplayOrder != nil {
		r.DisplayOrder = *p.DisplayOrder
	}
}
