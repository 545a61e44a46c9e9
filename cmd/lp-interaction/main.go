package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joelkehle/lp-outreach/internal/config"
	"github.com/joelkehle/lp-outreach/internal/lpstore"
	"github.com/joelkehle/lp-outreach/internal/outreach"
)

func main() {
	name := flag.String("name", "", "LP name to act on")
	kind := flag.String("type", "", "Interaction type: Initial Outreach, Follow-up, or Meeting")
	notes := flag.String("notes", "", "Free-form interaction notes")
	draft := flag.Bool("draft", false, "Print a draft outreach message instead of logging")
	fundName := flag.String("fund", "Your Fund", "Fund name used in drafted messages")
	valueProp := flag.String("value-prop", "lower-middle-market B2B software", "Value proposition used in drafted messages")
	introSource := flag.String("intro", "", "Optional introduction source for drafted messages")
	summary := flag.Bool("summary", false, "Print the pipeline summary and recommended actions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	switch {
	case *draft:
		if *name == "" {
			log.Fatal("missing required -name")
		}
		rec, ok := findByName(store, *name)
		if !ok {
			log.Fatalf("LP %q not found", *name)
		}
		fmt.Println(outreach.DraftMessage(rec, *fundName, *valueProp, *introSource))
	case *summary:
		printSummary(store)
	default:
		if *name == "" || *kind == "" {
			log.Fatal("missing required -name and -type (or use -summary / -draft)")
		}
		if err := store.LogInteraction(*name, *kind, *notes); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Logged interaction for %s: %s\n", *name, *kind)
	}
}

func findByName(store lpstore.API, name string) (lpstore.LPRecord, bool) {
	for _, rec := range store.List() {
		if rec.Name == name {
			return rec, true
		}
	}
	return lpstore.LPRecord{}, false
}

func printSummary(store lpstore.API) {
	fmt.Println("Pipeline summary:")
	for _, status := range []lpstore.Status{lpstore.StatusProspect, lpstore.StatusContacted, lpstore.StatusEngaged, lpstore.StatusInDiscussion} {
		if n := store.Summary()[status]; n > 0 {
			fmt.Printf("  %s: %d\n", status, n)
		}
	}
	actions := store.RecommendedActions()
	if len(actions) == 0 {
		return
	}
	fmt.Println("\nRecommended actions:")
	for _, a := range actions {
		fmt.Printf("  - %s\n", a)
	}
}
