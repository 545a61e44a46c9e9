package discovery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// Field-label fallback chains, tried in order. The first non-empty source
// wins; a missing source never fails, it just yields "".
var (
	nameKeys     = []string{"name", "Investor Name", "Investor/Firm Name", "Family Office Name"}
	firmKeys     = []string{"Investor/Firm Name", "Family Office Name"}
	emailKeys    = []string{"Email or website", "Contact information", "email"}
	interestKeys = []string{"Investment focus/industries", "Investment interests"}
	dealKeys     = []string{"Notable deals or portfolio companies", "Notable investments"}
)

// Normalize projects one raw search-result item into the canonical record
// shape. The category is the label the search was issued under; Mixed
// searches delegate to Categorize. Items with no resolvable name are
// rejected (ok=false) — the sole hard validation rule.
func Normalize(item RawItem, category string, criteria InvestmentCriteria) (lpstore.LPRecord, bool) {
	name := firstValue(item, nameKeys)
	if name == "" {
		return lpstore.LPRecord{}, false
	}

	cat := lpstore.Category(category)
	if category == SearchCategoryMixed {
		cat = Categorize(item)
	}

	firm := firstValue(item, firmKeys)
	if firm == "" {
		firm = name
	}

	return lpstore.LPRecord{
		Name:         name,
		Firm:         firm,
		Email:        firstValue(item, emailKeys),
		Interests:    firstValue(item, interestKeys),
		Category:     cat,
		EBITDARange:  criteria.EBITDALabel(),
		RevenueRange: criteria.RevenueLabel(),
		Preferences:  criteria.PreferencesLabel(),
		Industries:   criteria.IndustriesLabel(),
		DealHistory:  firstValue(item, dealKeys),
		Confidence:   ScoreConfidence(item, name),
		Status:       lpstore.StatusProspect,
		NextAction:   "Initial Outreach",
		Notes:        NotesPrefix + truncateRunes(value(item, "raw_text"), 200),
	}, true
}

// Categorize infers an LP category from an item's flattened text. Match
// order is significant: family-office detection takes precedence over
// fund/institutional, which takes precedence over individual signals.
func Categorize(item RawItem) lpstore.Category {
	text := strings.ToLower(flatten(item))
	switch {
	case strings.Contains(text, "family office"):
		return lpstore.CategoryFamilyOffice
	case strings.Contains(text, "fund"), strings.Contains(text, "institutional"):
		return lpstore.CategoryFundInvestor
	case strings.Contains(text, "individual"), strings.Contains(text, "angel"), strings.Contains(text, "hnw"):
		return lpstore.CategoryHNWIndividual
	default:
		return lpstore.CategoryGPInvestor
	}
}

func firstValue(item RawItem, keys []string) string {
	for _, key := range keys {
		if v := value(item, key); v != "" {
			return v
		}
	}
	return ""
}

func value(item RawItem, key string) string {
	v, ok := item[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, stringify(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// flatten renders keys and values into one searchable string. Keys sort so
// the output is stable regardless of map iteration order.
func flatten(item RawItem) string {
	keys := make([]string, 0, len(item))
	for k := range item {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(stringify(item[k]))
		b.WriteString(" ")
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
