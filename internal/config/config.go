package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/joelkehle/lp-outreach/internal/discovery"
	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

type Config struct {
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`

	// StoreBackend selects the persisted LP store: "csv" or "sqlite".
	StoreBackend string `envconfig:"STORE_BACKEND" default:"csv"`
	DataFile     string `envconfig:"DATA_FILE" default:"lp_database.csv"`
	DBPath       string `envconfig:"DB_PATH" default:"lp_database.db"`

	SearchDepth         string `envconfig:"SEARCH_DEPTH" default:"comprehensive"`
	MaxResultsPerSearch int    `envconfig:"MAX_RESULTS_PER_SEARCH" default:"20"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("LP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) OpenStore() (lpstore.API, error) {
	switch c.StoreBackend {
	case "sqlite":
		return lpstore.NewSQLiteStore(c.DBPath)
	case "csv", "":
		return lpstore.NewCSVStore(c.DataFile)
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
}

func (c *Config) SearchConfig() discovery.SearchConfig {
	sc := discovery.DefaultSearchConfig()
	if c.SearchDepth != "" {
		sc.SearchDepth = c.SearchDepth
	}
	if c.MaxResultsPerSearch > 0 {
		sc.MaxResultsPerSearch = c.MaxResultsPerSearch
	}
	return sc
}

// DefaultCriteria is the built-in search profile; a preferences file could
// replace this later.
func DefaultCriteria() discovery.InvestmentCriteria {
	return discovery.InvestmentCriteria{
		UseEBITDA:      true,
		UseRevenue:     true,
		UseIndustries:  true,
		UsePreferences: true,
		EBITDARange:    [2]float64{1, 5},
		RevenueRange:   [2]float64{20, 150},
		Industries:     []string{"SaaS", "Fintech", "Healthcare IT"},
		CompanyTargets: []string{"B2B Software", "Enterprise Solutions"},
		Preferences:    []string{"emerging_managers", "special_situations"},
	}
}
