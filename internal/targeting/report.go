package targeting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// BuildReport renders the daily target list as a human-readable markdown
// report: summary statistics followed by one section per target with contact
// details and derived talking points.
func BuildReport(targets []Target, now time.Time) string {
	if len(targets) == 0 {
		return "No targets available for today."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Daily LP Outreach Targets - %s\n\n", now.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Targets**: %d\n", len(targets))
	fmt.Fprintf(&b, "- **By Category**:\n")
	for _, cc := range categoryCounts(targets) {
		fmt.Fprintf(&b, "  - %s: %d\n", cc.category, cc.count)
	}
	fmt.Fprintf(&b, "- **Average Confidence Score**: %.1f%%\n", averageConfidence(targets))
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "## Recommended Outreach Order\n\n")
	for i, t := range targets {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, t.Name)
		fmt.Fprintf(&b, "- **Firm**: %s\n", t.Firm)
		if t.Category != "" {
			fmt.Fprintf(&b, "- **Category**: %s\n", t.Category)
		}
		if t.Email != "" {
			fmt.Fprintf(&b, "- **Contact**: %s\n", t.Email)
		}
		if t.Interests != "" {
			fmt.Fprintf(&b, "- **Focus**: %s\n", t.Interests)
		}
		if t.DealHistory != "" {
			fmt.Fprintf(&b, "- **Notable Deals**: %s\n", truncate(t.DealHistory, 150))
		}
		if t.Preferences != "" {
			fmt.Fprintf(&b, "- **Preferences**: %s\n", t.Preferences)
		}
		fmt.Fprintf(&b, "- **Confidence**: %d%%\n", t.Confidence)

		fmt.Fprintf(&b, "\n**Key Talking Points**:\n")
		if t.Industries != "" {
			fmt.Fprintf(&b, "- Alignment with %s focus\n", t.Industries)
		}
		if t.EBITDARange != "" {
			fmt.Fprintf(&b, "- Target EBITDA range: %s\n", t.EBITDARange)
		}
		if t.RevenueRange != "" {
			fmt.Fprintf(&b, "- Target revenue range: %s\n", t.RevenueRange)
		}
		b.WriteString("\n---\n\n")
	}

	return b.String()
}

type categoryCount struct {
	category lpstore.Category
	count    int
}

// categoryCounts orders categories by descending count, ties by first
// appearance in the list.
func categoryCounts(targets []Target) []categoryCount {
	counts := map[lpstore.Category]int{}
	order := []lpstore.Category{}
	for _, t := range targets {
		if _, ok := counts[t.Category]; !ok {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}
	out := make([]categoryCount, 0, len(order))
	for _, cat := range order {
		out = append(out, categoryCount{category: cat, count: counts[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

func averageConfidence(targets []Target) float64 {
	total := 0
	for _, t := range targets {
		total += t.Confidence
	}
	return float64(total) / float64(len(targets))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
