package discovery

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SearchCategoryMixed marks cross-cutting industry searches whose results
	// must be categorized from their own text.
	SearchCategoryMixed = "Mixed"

	// NotesPrefix seeds every discovered record's notes for audit traceability.
	NotesPrefix = "Discovered via automated search. "

	// MaxTextFallbackItems caps results recovered by text segmentation when a
	// response carries no parseable JSON array.
	MaxTextFallbackItems = 15

	SearchDepthStandard      = "standard"
	SearchDepthComprehensive = "comprehensive"
)

// RawItem is one unstructured search-result item: natural-language field
// labels mapped to values of whatever shape the model produced. Its shape is
// not fixed across calls and never leaks past normalization.
type RawItem map[string]any

// InvestmentCriteria are the search parameters that produced a batch of
// results; their labels are echoed onto every record from that search.
type InvestmentCriteria struct {
	UseEBITDA      bool
	UseRevenue     bool
	UseIndustries  bool
	UsePreferences bool

	EBITDARange    [2]float64 // millions USD
	RevenueRange   [2]float64 // millions USD
	Industries     []string
	CompanyTargets []string
	Preferences    []string
}

func (c InvestmentCriteria) EBITDALabel() string {
	return fmt.Sprintf("$%sM-$%sM", millions(c.EBITDARange[0]), millions(c.EBITDARange[1]))
}

func (c InvestmentCriteria) RevenueLabel() string {
	return fmt.Sprintf("$%sM-$%sM", millions(c.RevenueRange[0]), millions(c.RevenueRange[1]))
}

func (c InvestmentCriteria) PreferencesLabel() string {
	return strings.Join(c.Preferences, ", ")
}

func (c InvestmentCriteria) IndustriesLabel() string {
	return strings.Join(c.Industries, ", ")
}

func millions(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SearchConfig controls which category searches a discovery run issues.
type SearchConfig struct {
	MaxResultsPerSearch int
	SearchDepth         string
	Categories          []string
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxResultsPerSearch: 20,
		SearchDepth:         SearchDepthComprehensive,
		Categories: []string{
			"GP Investor",
			"Fund Investor",
			"HNW Individual",
			"Family Office",
		},
	}
}
