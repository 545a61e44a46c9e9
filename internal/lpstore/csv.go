package lpstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// CSVStore implements API with CSV-backed persistence. The whole file is
// rewritten after every mutation; the store is a single-writer resource and
// concurrent multi-process writers are unsupported.
type CSVStore struct {
	inner *Store
	path  string
	mu    sync.Mutex
}

// NewCSVStore loads the record set from path. A missing file initializes an
// empty store and writes the schema header.
func NewCSVStore(path string) (*CSVStore, error) {
	s := &CSVStore{inner: NewStore(), path: path}
	records, err := loadCSVFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	s.inner.replaceAll(records)
	return s, nil
}

func (s *CSVStore) List() []LPRecord { return s.inner.List() }

func (s *CSVStore) Import(records []LPRecord) (int, error) {
	positions := s.inner.importRecords(records)
	if len(positions) == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(); err != nil {
		return len(positions), err
	}
	return len(positions), nil
}

func (s *CSVStore) LogInteraction(name, kind, notes string) error {
	if _, err := s.inner.logInteraction(name, kind, notes); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *CSVStore) Summary() map[Status]int      { return s.inner.Summary() }
func (s *CSVStore) RecommendedActions() []string { return s.inner.RecommendedActions() }
func (s *CSVStore) Close() error                 { return nil }

func (s *CSVStore) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, rec := range s.inner.List() {
		if err := w.Write(recordToRow(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func loadCSVFile(path string) ([]LPRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Header-indexed access tolerates files written before a column existed.
	index := map[string]int{}
	for i, name := range rows[0] {
		index[name] = i
	}
	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]LPRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowToRecord(row, cell))
	}
	return records, nil
}

func rowToRecord(row []string, cell func([]string, string) string) LPRecord {
	// A non-numeric confidence reads as 0.
	confidence, _ := strconv.Atoi(cell(row, "Confidence_Score"))
	return LPRecord{
		Name:          cell(row, "LP_Name"),
		Firm:          cell(row, "Firm"),
		Email:         cell(row, "Email"),
		Interests:     cell(row, "Interests"),
		Status:        Status(cell(row, "Status")),
		LastContact:   cell(row, "Last_Contact"),
		NextAction:    cell(row, "Next_Action"),
		Notes:         cell(row, "Notes"),
		Category:      Category(cell(row, "LP_Category")),
		EBITDARange:   cell(row, "EBITDA_Range"),
		RevenueRange:  cell(row, "Revenue_Range"),
		Preferences:   cell(row, "Investment_Preferences"),
		Industries:    cell(row, "Industries"),
		DealHistory:   cell(row, "Deal_History"),
		DiscoveryDate: cell(row, "Discovery_Date"),
		Confidence:    confidence,
	}
}

func recordToRow(rec LPRecord) []string {
	return []string{
		rec.Name, rec.Firm, rec.Email, rec.Interests, string(rec.Status),
		rec.LastContact, rec.NextAction, rec.Notes,
		string(rec.Category), rec.EBITDARange, rec.RevenueRange,
		rec.Preferences, rec.Industries, rec.DealHistory,
		rec.DiscoveryDate, strconv.Itoa(rec.Confidence),
	}
}

var _ API = (*CSVStore)(nil)
