package targeting

import (
	"sort"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// Balance reshapes a ranked pool so no single category dominates the daily
// list. With one category (or none) it is a no-op. Otherwise each category
// contributes up to max(2, targetCount/|categories|) records in pool order;
// a short result backfills with the highest-scoring leftovers regardless of
// category. The caller owns the final sort and truncation to targetCount.
func Balance(pool []Target, targetCount int) []Target {
	categories := categoriesInOrder(pool)
	if len(categories) <= 1 {
		return pool
	}

	perCategory := targetCount / len(categories)
	if perCategory < 2 {
		perCategory = 2
	}

	selected := make([]bool, len(pool))
	balanced := []Target{}
	for _, cat := range categories {
		taken := 0
		for i, t := range pool {
			if t.Category != cat || taken >= perCategory {
				continue
			}
			balanced = append(balanced, t)
			selected[i] = true
			taken++
		}
	}

	if len(balanced) < targetCount {
		rest := []Target{}
		for i, t := range pool {
			if !selected[i] {
				rest = append(rest, t)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool { return rest[i].PriorityScore > rest[j].PriorityScore })
		need := targetCount - len(balanced)
		if need > len(rest) {
			need = len(rest)
		}
		balanced = append(balanced, rest[:need]...)
	}
	return balanced
}

func categoriesInOrder(pool []Target) []lpstore.Category {
	seen := map[lpstore.Category]struct{}{}
	out := []lpstore.Category{}
	for _, t := range pool {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}
