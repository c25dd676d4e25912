package topics

import (
	"strings"
)

// SourceKind identifies where a template parameter's value comes from at
// request time. The set is closed; dispatch happens over an exhaustive
// switch, never by comparing raw strings from the wire.
type SourceKind string

const (
	// SourceRequest reads a field from the incoming request payload.
	SourceRequest SourceKind = "request"
	// SourceUser fetches the tenant/user profile.
	SourceUser SourceKind = "user"
	// SourceOnboarding fetches the business-foundation snapshot captured
	// during onboarding.
	SourceOnboarding SourceKind = "onboarding"
	SourceGoal       SourceKind = "goal"
	SourceGoals      SourceKind = "goals"
	SourceMeasure    SourceKind = "measure"
	SourceMeasures   SourceKind = "measures"
	SourceAction     SourceKind = "action"
	SourceIssue      SourceKind = "issue"
	// SourceConversation fetches the transcript/summary of the current
	// coaching conversation.
	SourceConversation SourceKind = "conversation"
	// SourceWebsite fetches the latest website-scan result for the tenant.
	SourceWebsite SourceKind = "website"
	// SourceComputed reads a value the caller derived earlier in the same
	// request (e.g. an alignment score).
	SourceComputed SourceKind = "computed"
)

// AllSourceKinds lists every kind, in a stable order.
var AllSourceKinds = []SourceKind{
	SourceRequest,
	SourceUser,
	SourceOnboarding,
	SourceGoal,
	SourceGoals,
	SourceMeasure,
	SourceMeasures,
	SourceAction,
	SourceIssue,
	SourceConversation,
	SourceWebsite,
	SourceComputed,
}

func (k SourceKind) Valid() bool {
	switch k {
	case SourceRequest, SourceUser, SourceOnboarding,
		SourceGoal, SourceGoals, SourceMeasure, SourceMeasures,
		SourceAction, SourceIssue, SourceConversation,
		SourceWebsite, SourceComputed:
		return true
	}
	return false
}

// RequiredByDefault reports whether a parameter of this kind must resolve
// unless the ref carries an explicit override. Onboarding, website and
// computed values are best-effort by default: a tenant may not have
// completed onboarding or scanned a website yet, and computed values only
// exist when the caller produced them.
func (k SourceKind) RequiredByDefault() bool {
	switch k {
	case SourceOnboarding, SourceWebsite, SourceComputed:
		return false
	default:
		return true
	}
}

// ProjectPath walks a dotted path through nested map values. An empty path
// returns the value unchanged. The second return is false when any segment
// is absent or the value at an intermediate segment is not a map.
func ProjectPath(v interface{}, path string) (interface{}, bool) {
	if path == "" {
		return v, v != nil
	}
	cur := v
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}
