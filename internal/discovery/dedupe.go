package discovery

import (
	"strings"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// Dedupe collapses records representing the same firm within one discovery
// run. The key is the firm name, else the LP name, lower-cased and trimmed;
// first occurrence wins. Records with an empty key are excluded entirely —
// empty keys are never considered duplicates of each other.
func Dedupe(records []lpstore.LPRecord) []lpstore.LPRecord {
	seen := map[string]struct{}{}
	unique := make([]lpstore.LPRecord, 0, len(records))
	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Firm))
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(rec.Name))
		}
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}
