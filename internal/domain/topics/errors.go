package topics

import (
	"fmt"
	"strings"
)

// DuplicateTopicError reports an attempt to create a topic record whose
// topic_id already exists in the store.
type DuplicateTopicError struct {
	TopicID string
}

func (e *DuplicateTopicError) Error() string {
	return fmt.Sprintf("topic %q already exists", e.TopicID)
}

// TopicNotFoundError covers both a missing record and a record whose
// required prompt slot has no stored body (the topic is "not fully
// configured" in that case).
type TopicNotFoundError struct {
	TopicID string
	Slot    string
}

func (e *TopicNotFoundError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("topic %q has no prompt content for slot %q", e.TopicID, e.Slot)
	}
	return fmt.Sprintf("topic %q not found", e.TopicID)
}

type InvalidTopicTypeError struct {
	Value string
}

func (e *InvalidTopicTypeError) Error() string {
	return fmt.Sprintf("invalid topic type %q", e.Value)
}

// InvalidModelConfigurationError blocks a write whose sampling or model
// fields fall outside the allowed ranges. It is never downgraded to a clamp.
type InvalidModelConfigurationError struct {
	TopicID string
	Err     error
}

func (e *InvalidModelConfigurationError) Error() string {
	return fmt.Sprintf("invalid model configuration for topic %q: %v", e.TopicID, e.Err)
}

func (e *InvalidModelConfigurationError) Unwrap() error { return e.Err }

// MissingParameterError aborts prompt assembly when a required parameter
// cannot be resolved from its source.
type MissingParameterError struct {
	TopicID string
	Name    string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q for topic %q", e.Name, e.TopicID)
}

// InvalidParameterError rejects admin prompt content that references
// placeholders not declared for the topic.
type InvalidParameterError struct {
	TopicID string
	Names   []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("prompt content for topic %q references undeclared parameters: %s",
		e.TopicID, strings.Join(e.Names, ", "))
}

// SlotNotAllowedError rejects prompt content for a slot the topic's
// definition does not declare.
type SlotNotAllowedError struct {
	TopicID string
	Slot    string
}

func (e *SlotNotAllowedError) Error() string {
	return fmt.Sprintf("slot %q is not allowed for topic %q", e.Slot, e.TopicID)
}

type BlobStorageError struct {
	Op  string
	Key string
	Err error
}

func (e *BlobStorageError) Error() string {
	return fmt.Sprintf("blob storage %s failed for %q: %v", e.Op, e.Key, e.Err)
}

func (e *BlobStorageError) Unwrap() error { return e.Err }

// TopicUpdateError wraps an underlying persistence failure on an update path.
type TopicUpdateError struct {
	TopicID string
	Err     error
}

func (e *TopicUpdateError) Error() string {
	return fmt.Sprintf("failed to update topic %q: %v", e.TopicID, e.Err)
}

func (e *TopicUpdateError) Unwrap() error { return e.Err }
