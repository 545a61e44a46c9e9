package discovery

import (
	"strings"
	"testing"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

func testCriteria() InvestmentCriteria {
	return InvestmentCriteria{
		UseEBITDA:      true,
		UseRevenue:     true,
		UseIndustries:  true,
		UsePreferences: true,
		EBITDARange:    [2]float64{1, 5},
		RevenueRange:   [2]float64{20, 150},
		Industries:     []string{"SaaS", "Fintech"},
		Preferences:    []string{"emerging_managers"},
	}
}

func TestNormalizeNameFallbackChain(t *testing.T) {
	cases := []struct {
		item RawItem
		want string
	}{
		{RawItem{"name": "Direct Name"}, "Direct Name"},
		{RawItem{"Investor Name": "Jane Roe"}, "Jane Roe"},
		{RawItem{"Investor/Firm Name": "Acme Capital"}, "Acme Capital"},
		{RawItem{"Family Office Name": "Roe Family Office"}, "Roe Family Office"},
		{RawItem{"name": "", "Investor Name": "Second Choice"}, "Second Choice"},
	}
	for _, tc := range cases {
		rec, ok := Normalize(tc.item, "GP Investor", testCriteria())
		if !ok {
			t.Fatalf("item %v rejected", tc.item)
		}
		if rec.Name != tc.want {
			t.Fatalf("name = %q, want %q", rec.Name, tc.want)
		}
	}
}

func TestNormalizeRejectsWhenNoNameResolves(t *testing.T) {
	items := []RawItem{
		{},
		{"Email or website": "x@y.com", "Investment interests": "SaaS"},
		{"name": "", "Investor Name": "   "},
	}
	for _, item := range items {
		if _, ok := Normalize(item, "GP Investor", testCriteria()); ok {
			t.Fatalf("item %v should be rejected", item)
		}
	}
}

func TestNormalizeFieldFallbackChains(t *testing.T) {
	item := RawItem{
		"Investor Name":        "Jane Roe",
		"Contact information":  "linkedin.com/in/janeroe",
		"Investment interests": "Healthcare IT",
		"Notable investments":  "MedCo, HealthCo",
	}
	rec, ok := Normalize(item, "HNW Individual", testCriteria())
	if !ok {
		t.Fatal("rejected")
	}
	if rec.Email != "linkedin.com/in/janeroe" {
		t.Fatalf("email = %q", rec.Email)
	}
	if rec.Interests != "Healthcare IT" {
		t.Fatalf("interests = %q", rec.Interests)
	}
	if rec.DealHistory != "MedCo, HealthCo" {
		t.Fatalf("deal history = %q", rec.DealHistory)
	}
	if rec.Firm != "Jane Roe" {
		t.Fatalf("firm should fall back to name, got %q", rec.Firm)
	}
}

func TestNormalizeMissingSourcesYieldEmptyStrings(t *testing.T) {
	rec, ok := Normalize(RawItem{"name": "Solo"}, "GP Investor", testCriteria())
	if !ok {
		t.Fatal("rejected")
	}
	if rec.Email != "" || rec.Interests != "" || rec.DealHistory != "" {
		t.Fatalf("expected empty optional fields, got %+v", rec)
	}
}

func TestNormalizeEchoesCriteriaLabels(t *testing.T) {
	rec, ok := Normalize(RawItem{"name": "Acme"}, "GP Investor", testCriteria())
	if !ok {
		t.Fatal("rejected")
	}
	if rec.EBITDARange != "$1M-$5M" {
		t.Fatalf("ebitda label = %q", rec.EBITDARange)
	}
	if rec.RevenueRange != "$20M-$150M" {
		t.Fatalf("revenue label = %q", rec.RevenueRange)
	}
	if rec.Preferences != "emerging_managers" {
		t.Fatalf("preferences label = %q", rec.Preferences)
	}
	if rec.Industries != "SaaS, Fintech" {
		t.Fatalf("industries label = %q", rec.Industries)
	}
}

func TestNormalizeSeedsNotesWithTruncatedRawText(t *testing.T) {
	raw := strings.Repeat("x", 300)
	rec, ok := Normalize(RawItem{"name": "Acme", "raw_text": raw}, "GP Investor", testCriteria())
	if !ok {
		t.Fatal("rejected")
	}
	want := NotesPrefix + strings.Repeat("x", 200)
	if rec.Notes != want {
		t.Fatalf("notes = %q", rec.Notes)
	}
}

func TestNormalizeDefaultsStatusAndNextAction(t *testing.T) {
	rec, _ := Normalize(RawItem{"name": "Acme"}, "GP Investor", testCriteria())
	if rec.Status != lpstore.StatusProspect {
		t.Fatalf("status = %q", rec.Status)
	}
	if rec.NextAction != "Initial Outreach" {
		t.Fatalf("next action = %q", rec.NextAction)
	}
}

func TestNormalizeMixedDelegatesToCategorizer(t *testing.T) {
	rec, _ := Normalize(RawItem{"name": "Roe Partners", "raw_text": "a family office in Chicago"}, SearchCategoryMixed, testCriteria())
	if rec.Category != lpstore.CategoryFamilyOffice {
		t.Fatalf("category = %q", rec.Category)
	}

	rec, _ = Normalize(RawItem{"name": "Roe Partners"}, "Fund Investor", testCriteria())
	if rec.Category != lpstore.CategoryFundInvestor {
		t.Fatalf("non-Mixed searches keep the search category, got %q", rec.Category)
	}
}

func TestCategorizePrecedence(t *testing.T) {
	cases := []struct {
		item RawItem
		want lpstore.Category
	}{
		// family office wins over fund when both appear
		{RawItem{"desc": "a family office that backs venture funds"}, lpstore.CategoryFamilyOffice},
		{RawItem{"desc": "an institutional pension fund"}, lpstore.CategoryFundInvestor},
		{RawItem{"desc": "an angel who writes small checks"}, lpstore.CategoryHNWIndividual},
		{RawItem{"desc": "a growth equity firm"}, lpstore.CategoryGPInvestor},
		{RawItem{"Type": "HNW"}, lpstore.CategoryHNWIndividual},
	}
	for _, tc := range cases {
		if got := Categorize(tc.item); got != tc.want {
			t.Fatalf("Categorize(%v) = %q, want %q", tc.item, got, tc.want)
		}
	}
}

func TestStringifyHandlesNonStringValues(t *testing.T) {
	item := RawItem{
		"name":                "Acme",
		"Notable investments": []any{"CoA", "CoB"},
		"Email or website":    42.0,
	}
	rec, ok := Normalize(item, "GP Investor", testCriteria())
	if !ok {
		t.Fatal("rejected")
	}
	if rec.DealHistory != "CoA, CoB" {
		t.Fatalf("deal history = %q", rec.DealHistory)
	}
	if rec.Email != "42" {
		t.Fatalf("email = %q", rec.Email)
	}
}
