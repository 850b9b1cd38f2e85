package validation

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaLevelKey is the reserved location key for failures that are not
// attributable to one field.
const SchemaLevelKey = "_schema"

// Messages is the payload of a validation error: a single message, a flat
// list of messages, or a nested mapping from location key to payload. The
// three variants (Text, List, FieldMap) are the only implementations, so
// switches over Messages are exhaustive.
type Messages interface {
	isMessages()
}

// Text is a single validation message.
type Text string

func (Text) isMessages() {}

// List is a flat sequence of validation messages.
type List []string

func (List) isMessages() {}

// FieldMap maps location keys (field names or SchemaLevelKey) to message
// payloads, which may themselves be FieldMaps for nested failures.
type FieldMap map[string]Messages

func (FieldMap) isMessages() {}

// canonical wraps a single message into a one-element list so a string is
// never treated as a sequence of characters. Lists and mappings pass through.
func canonical(m Messages) Messages {
	if text, ok := m.(Text); ok {
		return List{string(text)}
	}
	return m
}

// MergeMessages merges src into dst, keyed by location, and returns the
// result. Neither input is mutated. On key collision the payloads merge:
// lists concatenate, mappings merge recursively, and a list colliding with a
// mapping folds into the mapping's schema-level entry.
//
// Aggregating validation walkers use this to present every failure from one
// pass as a single structure instead of only the first failure encountered.
func MergeMessages(dst, src FieldMap) FieldMap {
	merged := make(FieldMap, len(dst)+len(src))
	for key, payload := range dst {
		merged[key] = payload
	}
	for key, payload := range src {
		if existing, ok := merged[key]; ok {
			merged[key] = mergePayloads(existing, payload)
		} else {
			merged[key] = payload
		}
	}
	return merged
}

// mergePayloads combines two payloads attached to the same location key.
func mergePayloads(a, b Messages) Messages {
	a, b = canonical(a), canonical(b)

	aMap, aIsMap := a.(FieldMap)
	bMap, bIsMap := b.(FieldMap)

	switch {
	case aIsMap && bIsMap:
		return MergeMessages(aMap, bMap)
	case aIsMap:
		return MergeMessages(aMap, FieldMap{SchemaLevelKey: b})
	case bIsMap:
		return MergeMessages(FieldMap{SchemaLevelKey: a}, bMap)
	default:
		aList := a.(List)
		bList := b.(List)
		combined := make(List, 0, len(aList)+len(bList))
		combined = append(combined, aList...)
		combined = append(combined, bList...)
		return combined
	}
}

// render formats a payload for error strings. Mapping keys are sorted so the
// output is deterministic.
func render(m Messages) string {
	switch payload := m.(type) {
	case Text:
		return string(payload)
	case List:
		return "[" + strings.Join(payload, "; ") + "]"
	case FieldMap:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = fmt.Sprintf("%s: %s", key, render(payload[key]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", m)
	}
}
