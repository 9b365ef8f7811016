package domain

import (
	"encoding/json"
	"strings"
)

// FlexibleList is the normalized form of fields that may be stored either as a
// JSON-encoded list or as a bare string (responsibilities, achievements,
// activities, technologies). Parsing is total: it never fails, it only
// degrades to a sensible single-element or comma-split list.
type FlexibleList []string

// ParseFlexibleText decodes a free-text field. A JSON array wins; anything
// else (including malformed JSON) is wrapped as a one-element list.
func ParseFlexibleText(raw string) FlexibleList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return items
	}
	return FlexibleList{raw}
}

// ParseFlexibleKeywords decodes a keyword-like field (technologies, tags).
// A JSON array wins; anything else is split on commas.
func ParseFlexibleKeywords(raw string) FlexibleList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return items
	}
	return SplitKeywords(raw)
}

// SplitKeywords splits a comma-separated keyword string, trimming whitespace
// and dropping empty segments.
func SplitKeywords(raw string) FlexibleList {
	parts := strings.Split(raw, ",")
	out := make(FlexibleList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
