package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joelkehle/lp-outreach/internal/config"
	"github.com/joelkehle/lp-outreach/internal/lpstore"
	"github.com/joelkehle/lp-outreach/internal/targeting"
)

func main() {
	count := flag.Int("count", targeting.DefaultTargetCount, "Number of LPs in the daily list")
	category := flag.String("category", "", "Category to prioritize (e.g. \"Family Office\")")
	minConfidence := flag.Int("min-confidence", 50, "Minimum confidence score (0-100)")
	industriesFlag := flag.String("industries", "", "Comma-separated industry filters")
	csvOut := flag.String("csv", "", "CSV output path (default daily_targets_<date>.csv)")
	reportOut := flag.String("report", "", "Markdown report output path (default daily_targets_report_<date>.md)")
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

	opts := targeting.Options{
		TargetCount:        *count,
		PrioritizeCategory: lpstore.Category(*category),
		MinConfidence:      *minConfidence,
	}
	if *industriesFlag != "" {
		opts.Industries = splitList(*industriesFlag)
	}

	targets := targeting.NewGenerator(store).Generate(opts)
	if len(targets) == 0 {
		fmt.Println("No LPs match the specified criteria. Try lowering -min-confidence or removing filters.")
		return
	}

	now := time.Now()
	dateStr := now.Format("2006-01-02")
	csvPath := *csvOut
	if csvPath == "" {
		csvPath = "daily_targets_" + dateStr + ".csv"
	}
	reportPath := *reportOut
	if reportPath == "" {
		reportPath = "daily_targets_report_" + dateStr + ".md"
	}

	if err := targeting.ExportCSV(csvPath, targets); err != nil {
		log.Fatalf("export csv: %v", err)
	}
	if err := os.WriteFile(reportPath, []byte(targeting.BuildReport(targets, now)), 0o644); err != nil {
		log.Fatalf("write report: %v", err)
	}

	fmt.Printf("Generated %d daily targets\n\nExported to:\n  - %s\n  - %s\n\n", len(targets), csvPath, reportPath)

	fmt.Println("Top 5 Priority Targets:")
	for i, t := range targets {
		if i == 5 {
			break
		}
		fmt.Printf("\n%d. %s\n   Firm: %s\n   Category: %s\n   Confidence: %d%%\n", i+1, t.Name, t.Firm, t.Category, t.Confidence)
		if t.Email != "" {
			fmt.Printf("   Contact: %s\n", t.Email)
		}
	}
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
