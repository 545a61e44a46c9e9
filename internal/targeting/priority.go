package targeting

import (
	"strings"
	"time"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// Options control one daily targeting run.
type Options struct {
	TargetCount        int
	PrioritizeCategory lpstore.Category
	MinConfidence      int
	Industries         []string
}

// Target is a stored record annotated with its composite ranking score.
// The score is recomputed on every run and never persisted as authoritative.
type Target struct {
	lpstore.LPRecord
	PriorityScore float64
}

// FilterCandidates keeps the Prospect/Contacted records that clear the
// confidence threshold and, when an industries filter is given, match at
// least one of its substrings case-insensitively.
func FilterCandidates(records []lpstore.LPRecord, opts Options) []lpstore.LPRecord {
	out := []lpstore.LPRecord{}
	for _, rec := range records {
		if rec.Status != lpstore.StatusProspect && rec.Status != lpstore.StatusContacted {
			continue
		}
		if opts.MinConfidence > 0 && rec.Confidence < opts.MinConfidence {
			continue
		}
		if len(opts.Industries) > 0 && !matchesAnyIndustry(rec.Industries, opts.Industries) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesAnyIndustry(industries string, filters []string) bool {
	haystack := strings.ToLower(industries)
	for _, f := range filters {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if strings.Contains(haystack, f) {
			return true
		}
	}
	return false
}

// Score computes the composite priority of one candidate. Pure function of
// (record, options, now); no shared state is mutated while accumulating.
func Score(rec lpstore.LPRecord, opts Options, now time.Time) float64 {
	score := 0.5 * float64(rec.Confidence)

	switch rec.Status {
	case lpstore.StatusProspect:
		score += 30
	case lpstore.StatusContacted:
		score += 15
	}

	if opts.PrioritizeCategory != "" && rec.Category == opts.PrioritizeCategory {
		score += 20
	}

	score += recencyBonus(rec.DiscoveryDate, now)

	if strings.TrimSpace(rec.DealHistory) != "" {
		score += 10
	}
	return score
}

// recencyBonus decays linearly from 10 on discovery day to 0 after 30 days.
// Future-dated records still cap at 10; unparsable dates contribute 0.
func recencyBonus(discoveryDate string, now time.Time) float64 {
	d, ok := parseDate(discoveryDate)
	if !ok {
		return 0
	}
	daysSince := int(now.Sub(d).Hours() / 24)
	bonus := 30 - daysSince
	if bonus < 0 {
		bonus = 0
	}
	if bonus > 10 {
		bonus = 10
	}
	return float64(bonus)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
