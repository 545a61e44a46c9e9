package targeting

import (
	"strings"
	"testing"
	"time"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

func TestBuildReportEmpty(t *testing.T) {
	got := BuildReport(nil, scoreNow)
	if got != "No targets available for today." {
		t.Fatalf("got %q", got)
	}
}

func TestBuildReportStructure(t *testing.T) {
	targets := []Target{
		{
			LPRecord: lpstore.LPRecord{
				Name:         "Jane Roe",
				Firm:         "Acme Capital",
				Email:        "jane@acme.example",
				Category:     lpstore.CategoryGPInvestor,
				Interests:    "B2B SaaS",
				Industries:   "SaaS, Fintech",
				EBITDARange:  "$1M-$5M",
				RevenueRange: "$20M-$150M",
				DealHistory:  "Series A in DataCo",
				Confidence:   90,
			},
			PriorityScore: 95,
		},
		{
			LPRecord: lpstore.LPRecord{
				Name:       "Smith Family Office",
				Firm:       "Smith Family Office",
				Category:   lpstore.CategoryFamilyOffice,
				Confidence: 70,
			},
			PriorityScore: 60,
		},
	}

	report := BuildReport(targets, time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"# Daily LP Outreach Targets - 2026-03-15",
		"- **Total Targets**: 2",
		"- **Average Confidence Score**: 80.0%",
		"## Recommended Outreach Order",
		"### 1. Jane Roe",
		"### 2. Smith Family Office",
		"- **Firm**: Acme Capital",
		"- **Contact**: jane@acme.example",
		"- **Notable Deals**: Series A in DataCo",
		"- **Confidence**: 90%",
		"**Key Talking Points**:",
		"- Alignment with SaaS, Fintech focus",
		"- Target EBITDA range: $1M-$5M",
		"- Target revenue range: $20M-$150M",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}

	// The second target has no email, so it gets no contact line.
	second := report[strings.Index(report, "### 2."):]
	if strings.Contains(second, "**Contact**") {
		t.Fatalf("empty email should omit the contact line:\n%s", second)
	}
}

func TestBuildReportCategoryCountsOrdered(t *testing.T) {
	targets := []Target{
		{LPRecord: lpstore.LPRecord{Name: "A", Category: lpstore.CategoryFamilyOffice}},
		{LPRecord: lpstore.LPRecord{Name: "B", Category: lpstore.CategoryGPInvestor}},
		{LPRecord: lpstore.LPRecord{Name: "C", Category: lpstore.CategoryGPInvestor}},
	}
	report := BuildReport(targets, scoreNow)

	gp := strings.Index(report, "GP Investor: 2")
	fo := strings.Index(report, "Family Office: 1")
	if gp < 0 || fo < 0 {
		t.Fatalf("missing category counts:\n%s", report)
	}
	if gp > fo {
		t.Fatalf("larger category should come first:\n%s", report)
	}
}

func TestBuildReportTruncatesDealHistory(t *testing.T) {
	long := strings.Repeat("x", 200)
	targets := []Target{
		{LPRecord: lpstore.LPRecord{Name: "A", Firm: "F", DealHistory: long}},
	}
	report := BuildReport(targets, scoreNow)
	if strings.Contains(report, long) {
		t.Fatalf("deal history over 150 runes should be truncated")
	}
	if !strings.Contains(report, strings.Repeat("x", 150)) {
		t.Fatalf("truncation should keep the first 150 runes")
	}
}
