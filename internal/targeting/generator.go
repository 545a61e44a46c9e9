package targeting

import (
	"sort"
	"time"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

const DefaultTargetCount = 10

// Generator produces the daily outreach list from the persisted store.
// Every invocation recomputes scores fresh; nothing is written back.
type Generator struct {
	store lpstore.API
	nowFn func() time.Time
}

func NewGenerator(store lpstore.API) *Generator {
	return &Generator{store: store, nowFn: time.Now}
}

// Generate filters, scores, balances, and ranks the store's candidates into
// a capped daily list. An empty candidate pool at any stage yields an empty,
// well-formed result.
func (g *Generator) Generate(opts Options) []Target {
	if opts.TargetCount <= 0 {
		opts.TargetCount = DefaultTargetCount
	}

	candidates := FilterCandidates(g.store.List(), opts)
	if len(candidates) == 0 {
		return []Target{}
	}

	now := g.nowFn()
	pool := make([]Target, 0, len(candidates))
	for _, rec := range candidates {
		pool = append(pool, Target{LPRecord: rec, PriorityScore: Score(rec, opts, now)})
	}

	// Pre-sort so the balancer's per-category head slices are the top scorers.
	sortByScore(pool)
	pool = Balance(pool, opts.TargetCount)
	sortByScore(pool)

	if len(pool) > opts.TargetCount {
		pool = pool[:opts.TargetCount]
	}
	return pool
}

func sortByScore(pool []Target) {
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].PriorityScore > pool[j].PriorityScore })
}
