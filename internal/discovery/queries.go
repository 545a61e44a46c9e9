package discovery

import (
	"fmt"
	"strings"
)

// Query is one planned search: the prompt sent to the generative collaborator
// and the category label its results are normalized under.
type Query struct {
	Category    string
	Description string
	Prompt      string
}

// BuildQueries plans one search per configured category, plus cross-cutting
// industry searches when the depth is comprehensive. The numbered field
// labels in each prompt are load-bearing: the normalizer's fallback chains
// key on them.
func BuildQueries(criteria InvestmentCriteria, cfg SearchConfig) []Query {
	desc := criteriaDescription(criteria)
	queries := []Query{}

	for _, category := range cfg.Categories {
		switch category {
		case "GP Investor":
			queries = append(queries, Query{
				Category:    category,
				Description: "GP investors in target industries",
				Prompt: fmt.Sprintf(`Find General Partner (GP) investors and venture capital firms that invest in companies with the following criteria:
%s

Please provide a list of 10-15 GP investors with:
1. Investor/Firm Name
2. Contact person (if available)
3. Email or website
4. Investment focus/industries
5. Notable deals or portfolio companies
6. Investment size preference

Format the response as a JSON array of objects.`, desc),
			})
		case "Fund Investor":
			queries = append(queries, Query{
				Category:    category,
				Description: "Fund investors (LPs in VC/PE funds)",
				Prompt: fmt.Sprintf(`Find institutional fund investors (Limited Partners) that invest in venture capital and private equity funds, particularly those interested in:
%s

Please provide a list of 10-15 fund investors with:
1. Investor/Firm Name
2. Contact person (if available)
3. Email or website
4. Investment focus/industries
5. Fund commitments or portfolio
6. Preferences (emerging managers, special situations, etc.)

Format the response as a JSON array of objects.`, desc),
			})
		case "HNW Individual":
			queries = append(queries, Query{
				Category:    category,
				Description: "High Net Worth individuals",
				Prompt: fmt.Sprintf(`Find High Net Worth (HNW) individual investors and angel investors who invest in companies or funds with:
%s

Please provide a list of 10-15 HNW individuals with:
1. Investor Name
2. Background/Company affiliation
3. Contact information
4. Investment interests
5. Notable investments
6. Investment size preference

Format the response as a JSON array of objects.`, desc),
			})
		case "Family Office":
			queries = append(queries, Query{
				Category:    category,
				Description: "Family offices",
				Prompt: fmt.Sprintf(`Find family offices that invest in companies or funds with:
%s

Please provide a list of 10-15 family offices with:
1. Family Office Name
2. Principal family or contact
3. Contact information
4. Investment focus/industries
5. Notable deals or portfolio companies
6. Preferences (emerging managers, special situations, etc.)

Format the response as a JSON array of objects.`, desc),
			})
		}
	}

	if criteria.UseIndustries && len(criteria.Industries) > 0 && cfg.SearchDepth == SearchDepthComprehensive {
		industries := criteria.Industries
		if len(industries) > 3 {
			industries = industries[:3]
		}
		for _, industry := range industries {
			queries = append(queries, Query{
				Category:    SearchCategoryMixed,
				Description: "Investors focused on " + industry,
				Prompt: fmt.Sprintf(`Find investors (GPs, funds, family offices, or HNW individuals) specifically focused on the %s industry who invest in companies with:
- EBITDA: $%sM - $%sM
- Revenue: $%sM - $%sM

Please provide a list of 10 investors with:
1. Investor Name and Type (GP/Fund/Family Office/HNW)
2. Contact information
3. Investment focus/industries
4. Notable %s investments
5. Investment size preference

Format the response as a JSON array of objects.`,
					industry,
					millions(criteria.EBITDARange[0]), millions(criteria.EBITDARange[1]),
					millions(criteria.RevenueRange[0]), millions(criteria.RevenueRange[1]),
					industry),
			})
		}
	}

	return queries
}

func criteriaDescription(criteria InvestmentCriteria) string {
	var b strings.Builder
	b.WriteString("Investment Criteria:\n")
	if criteria.UseEBITDA {
		fmt.Fprintf(&b, "- EBITDA Range: $%sM - $%sM\n", millions(criteria.EBITDARange[0]), millions(criteria.EBITDARange[1]))
	}
	if criteria.UseRevenue {
		fmt.Fprintf(&b, "- Revenue Range: $%sM - $%sM\n", millions(criteria.RevenueRange[0]), millions(criteria.RevenueRange[1]))
	}
	if criteria.UsePreferences && len(criteria.Preferences) > 0 {
		fmt.Fprintf(&b, "- Preferences: %s\n", strings.Join(criteria.Preferences, ", "))
	}
	if criteria.UseIndustries && len(criteria.Industries) > 0 {
		fmt.Fprintf(&b, "- Industries: %s\n", strings.Join(criteria.Industries, ", "))
	}
	if len(criteria.CompanyTargets) > 0 {
		fmt.Fprintf(&b, "- Company Targets: %s\n", strings.Join(criteria.CompanyTargets, ", "))
	}
	return b.String()
}
