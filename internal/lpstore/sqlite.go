package lpstore

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements API with SQLite-backed persistence. It delegates
// record logic to an embedded in-memory Store and persists rows with
// write-through semantics, keyed by position so the import order survives
// restarts.
type SQLiteStore struct {
	inner *Store
	db    *sqlx.DB
	mu    sync.Mutex
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS lps (
	position         INTEGER PRIMARY KEY,
	lp_name          TEXT NOT NULL,
	firm             TEXT NOT NULL DEFAULT '',
	email            TEXT NOT NULL DEFAULT '',
	interests        TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'Prospect',
	last_contact     TEXT NOT NULL DEFAULT '',
	next_action      TEXT NOT NULL DEFAULT '',
	notes            TEXT NOT NULL DEFAULT '',
	lp_category      TEXT NOT NULL DEFAULT '',
	ebitda_range     TEXT NOT NULL DEFAULT '',
	revenue_range    TEXT NOT NULL DEFAULT '',
	preferences      TEXT NOT NULL DEFAULT '',
	industries       TEXT NOT NULL DEFAULT '',
	deal_history     TEXT NOT NULL DEFAULT '',
	discovery_date   TEXT NOT NULL DEFAULT '',
	confidence_score INTEGER NOT NULL DEFAULT 0
);
`

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLiteStore{inner: NewStore(), db: db}
	if err := s.loadAll(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) loadAll() error {
	rows, err := s.db.Query(`SELECT lp_name, firm, email, interests, status,
		last_contact, next_action, notes, lp_category, ebitda_range, revenue_range,
		preferences, industries, deal_history, discovery_date, confidence_score
		FROM lps ORDER BY position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	records := []LPRecord{}
	for rows.Next() {
		var rec LPRecord
		var status, category string
		if err := rows.Scan(&rec.Name, &rec.Firm, &rec.Email, &rec.Interests, &status,
			&rec.LastContact, &rec.NextAction, &rec.Notes, &category, &rec.EBITDARange,
			&rec.RevenueRange, &rec.Preferences, &rec.Industries, &rec.DealHistory,
			&rec.DiscoveryDate, &rec.Confidence); err != nil {
			return err
		}
		rec.Status = Status(status)
		rec.Category = Category(category)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	s.inner.replaceAll(records)
	return nil
}

func (s *SQLiteStore) saveRecord(position int, rec LPRecord) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO lps (position, lp_name, firm, email, interests, status,
		last_contact, next_action, notes, lp_category, ebitda_range, revenue_range,
		preferences, industries, deal_history, discovery_date, confidence_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		position,
		rec.Name, rec.Firm, rec.Email, rec.Interests, string(rec.Status),
		rec.LastContact, rec.NextAction, rec.Notes,
		string(rec.Category), rec.EBITDARange, rec.RevenueRange,
		rec.Preferences, rec.Industries, rec.DealHistory,
		rec.DiscoveryDate, rec.Confidence,
	)
	return err
}

func (s *SQLiteStore) persistPositions(positions []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pos := range positions {
		rec, ok := s.inner.recordAt(pos)
		if !ok {
			continue
		}
		if err := s.saveRecord(pos, rec); err != nil {
			return err
		}
	}
	return nil
}

// --- API implementation ---

func (s *SQLiteStore) List() []LPRecord { return s.inner.List() }

func (s *SQLiteStore) Import(records []LPRecord) (int, error) {
	positions := s.inner.importRecords(records)
	if err := s.persistPositions(positions); err != nil {
		return len(positions), err
	}
	return len(positions), nil
}

func (s *SQLiteStore) LogInteraction(name, kind, notes string) error {
	pos, err := s.inner.logInteraction(name, kind, notes)
	if err != nil {
		return err
	}
	return s.persistPositions([]int{pos})
}

func (s *SQLiteStore) Summary() map[Status]int      { return s.inner.Summary() }
func (s *SQLiteStore) RecommendedActions() []string { return s.inner.RecommendedActions() }

var _ API = (*SQLiteStore)(nil)
