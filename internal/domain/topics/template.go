package topics

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// PlaceholderNames extracts every {{name}} occurrence in template text, in
// order of first appearance, without duplicates.
func PlaceholderNames(text string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// UndeclaredPlaceholders returns the placeholders in text that are not
// declared parameters of the definition.
func UndeclaredPlaceholders(d *TopicDefinition, text string) []string {
	offenders := []string{}
	for _, name := range PlaceholderNames(text) {
		if !d.HasParam(name) {
			offenders = append(offenders, name)
		}
	}
	return offenders
}

// Substitute replaces {{name}} placeholders with resolved values.
// Placeholders with no entry in params are left verbatim: a stale template
// is a configuration bug to surface at admin-edit time, not to mask with
// empty strings at runtime.
func Substitute(text string, params map[string]interface{}) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		v, ok := params[name]
		if !ok {
			return m
		}
		return renderValue(v)
	})
}

func renderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case map[string]interface{}, []interface{}:
		raw, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", t)
	}
}
