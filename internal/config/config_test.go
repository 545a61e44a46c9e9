package config

import (
	"path/filepath"
	"testing"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != "csv" {
		t.Fatalf("default backend = %q, want csv", cfg.StoreBackend)
	}
	if cfg.DataFile != "lp_database.csv" {
		t.Fatalf("default data file = %q", cfg.DataFile)
	}
	if cfg.SearchDepth != "comprehensive" {
		t.Fatalf("default search depth = %q", cfg.SearchDepth)
	}
	if cfg.MaxResultsPerSearch != 20 {
		t.Fatalf("default max results = %d", cfg.MaxResultsPerSearch)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LP_STORE_BACKEND", "sqlite")
	t.Setenv("LP_SEARCH_DEPTH", "standard")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != "sqlite" {
		t.Fatalf("backend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.SearchConfig().SearchDepth != "standard" {
		t.Fatalf("search depth = %q, want standard", cfg.SearchConfig().SearchDepth)
	}
}

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{StoreBackend: "csv", DataFile: filepath.Join(dir, "lps.csv")}
	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore csv: %v", err)
	}
	if _, ok := store.(*lpstore.CSVStore); !ok {
		t.Fatalf("got %T, want *lpstore.CSVStore", store)
	}
	store.Close()

	cfg = &Config{StoreBackend: "sqlite", DBPath: filepath.Join(dir, "lps.db")}
	store, err = cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore sqlite: %v", err)
	}
	if _, ok := store.(*lpstore.SQLiteStore); !ok {
		t.Fatalf("got %T, want *lpstore.SQLiteStore", store)
	}
	store.Close()

	cfg = &Config{StoreBackend: "postgres"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Fatalf("unknown backend should error")
	}
}
