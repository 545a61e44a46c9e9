package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joelkehle/lp-outreach/internal/config"
	"github.com/joelkehle/lp-outreach/internal/discovery"
)

func main() {
	industriesFlag := flag.String("industries", "", "Comma-separated industries (overrides defaults)")
	depth := flag.String("depth", "", "Search depth: standard or comprehensive (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	caller, err := discovery.NewAnthropicCaller(cfg.AnthropicAPIKey)
	if err != nil {
		log.Fatal(err)
	}

	criteria := config.DefaultCriteria()
	if *industriesFlag != "" {
		criteria.Industries = splitList(*industriesFlag)
	}
	searchCfg := cfg.SearchConfig()
	if *depth != "" {
		searchCfg.SearchDepth = *depth
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := discovery.NewEngine(caller)
	records, err := engine.Discover(ctx, criteria, searchCfg)
	if err != nil && err != context.Canceled {
		log.Fatal(err)
	}

	if len(records) == 0 {
		fmt.Println("No LPs discovered. Try adjusting the search criteria.")
	} else {
		fmt.Printf("Discovered %d unique LPs\n\nBreakdown by category:\n", len(records))
		counts := map[string]int{}
		order := []string{}
		for _, rec := range records {
			if _, ok := counts[string(rec.Category)]; !ok {
				order = append(order, string(rec.Category))
			}
			counts[string(rec.Category)]++
		}
		for _, cat := range order {
			fmt.Printf("  - %s: %d\n", cat, counts[cat])
		}
		fmt.Println()
	}

	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	imported, err := store.Import(records)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	fmt.Printf("Imported %d new LPs (skipped %d duplicates)\n", imported, len(records)-imported)
}

func splitList(s string) []string {
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
