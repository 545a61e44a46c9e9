package discovery

import (
	"context"
	"log"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// Engine runs a discovery pass: it issues each planned query sequentially,
// normalizes and scores every result, and collapses duplicates across the
// whole run. A failure in one query never aborts the remaining queries.
type Engine struct {
	gen TextGenerator
}

func NewEngine(gen TextGenerator) *Engine {
	return &Engine{gen: gen}
}

// Discover executes all searches for the given criteria and returns the
// unique normalized records, in search execution order. Query failures
// (including rate limiting) are logged and contribute zero results; the only
// way Discover stops early is context cancellation.
func (e *Engine) Discover(ctx context.Context, criteria InvestmentCriteria, cfg SearchConfig) ([]lpstore.LPRecord, error) {
	queries := BuildQueries(criteria, cfg)
	log.Printf("lp-discovery executing %d search queries", len(queries))

	all := []lpstore.LPRecord{}
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return Dedupe(all), err
		}

		text, err := e.gen.GenerateText(ctx, q.Prompt)
		if err != nil {
			if classifyTransportError(err) == failureRateLimit {
				log.Printf("lp-discovery query %d/%d rate limited (%s): %v", i+1, len(queries), q.Description, err)
			} else {
				log.Printf("lp-discovery query %d/%d failed (%s): %v", i+1, len(queries), q.Description, err)
			}
			continue
		}

		found := 0
		for _, item := range ParseResponse(text, q.Category) {
			rec, ok := Normalize(item, q.Category, criteria)
			if !ok {
				continue
			}
			all = append(all, rec)
			found++
		}
		log.Printf("lp-discovery query %d/%d (%s): %d potential LPs", i+1, len(queries), q.Description, found)
	}

	unique := Dedupe(all)
	log.Printf("lp-discovery total unique LPs: %d", len(unique))
	return unique, nil
}
