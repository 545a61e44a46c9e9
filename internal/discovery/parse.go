package discovery

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonArrayRe    = regexp.MustCompile(`\[[\s\S]*\]`)
	numberedItemRe = regexp.MustCompile(`\n\d+\.`)
)

// ParseResponse extracts raw items from a free-text search response. It
// prefers the first JSON array found anywhere in the text; when none parses,
// it degrades to numbered-item text segmentation producing partial records
// rather than failing the batch.
func ParseResponse(text, category string) []RawItem {
	if match := jsonArrayRe.FindString(text); match != "" {
		var items []map[string]any
		if err := json.Unmarshal([]byte(match), &items); err == nil {
			out := make([]RawItem, 0, len(items))
			for _, item := range items {
				out = append(out, RawItem(item))
			}
			return out
		}
	}
	return parseStructuredText(text, category)
}

// parseStructuredText splits a prose response on numbered-item boundaries.
// Each segment becomes a degenerate item carrying a first-line name guess
// and the raw text blob for audit traceability.
func parseStructuredText(text, category string) []RawItem {
	segments := numberedItemRe.Split(text, -1)
	if len(segments) < 2 {
		return nil
	}

	items := make([]RawItem, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		raw := strings.TrimSpace(seg)
		item := RawItem{
			"category": category,
			"raw_text": raw,
		}
		if lines := strings.Split(raw, "\n"); len(lines) > 0 {
			name := strings.Trim(lines[0], "*- ")
			name, _, _ = strings.Cut(name, ":")
			item["name"] = strings.TrimSpace(name)
		}
		items = append(items, item)
	}
	if len(items) > MaxTextFallbackItems {
		items = items[:MaxTextFallbackItems]
	}
	return items
}
