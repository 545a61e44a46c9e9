package lpstore

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// API is the repository handle passed to every component that reads or
// appends LP records. Import is append-only: an existing firm is never
// overwritten, only skipped.
type API interface {
	List() []LPRecord
	Import(records []LPRecord) (int, error)
	LogInteraction(name, kind, notes string) error
	Summary() map[Status]int
	RecommendedActions() []string
	Close() error
}

// Store is the in-memory record set. Persistent stores embed it and add
// write-through on mutation.
type Store struct {
	mu      sync.Mutex
	records []LPRecord
	nowFn   func() time.Time
}

func NewStore() *Store {
	return &Store{nowFn: time.Now}
}

func (s *Store) List() []LPRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LPRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Import(records []LPRecord) (int, error) {
	return len(s.importRecords(records)), nil
}

// importRecords appends each record whose Firm does not already exist in the
// store (exact, case-sensitive match) and returns the positions appended.
// Records imported earlier in the same batch count as existing. Records
// without a discovery date are stamped with the current date.
func (s *Store) importRecords(records []LPRecord) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := make([]int, 0, len(records))
	for _, rec := range records {
		if s.firmExistsLocked(rec.Firm) {
			continue
		}
		if rec.DiscoveryDate == "" {
			rec.DiscoveryDate = s.nowFn().Format("2006-01-02")
		}
		s.records = append(s.records, rec)
		positions = append(positions, len(s.records)-1)
	}
	return positions
}

func (s *Store) firmExistsLocked(firm string) bool {
	for _, rec := range s.records {
		if rec.Firm == firm {
			return true
		}
	}
	return false
}

func (s *Store) LogInteraction(name, kind, notes string) error {
	_, err := s.logInteraction(name, kind, notes)
	return err
}

// logInteraction updates the first record matching name and returns its
// position for write-through persistence.
func (s *Store) logInteraction(name, kind, notes string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.records {
		if s.records[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1, fmt.Errorf("LP %q not found", name)
	}

	rec := &s.records[idx]
	now := s.nowFn().Format("2006-01-02 15:04:05")
	rec.LastContact = now
	rec.Notes = rec.Notes + fmt.Sprintf("\n%s: %s - %s", now, kind, notes)

	switch kind {
	case InteractionInitialOutreach:
		rec.Status = StatusContacted
		rec.NextAction = "Follow-up in 1 week"
	case InteractionFollowUp:
		rec.Status = StatusEngaged
		rec.NextAction = "Schedule Meeting"
	case InteractionMeeting:
		rec.Status = StatusInDiscussion
		rec.NextAction = "Send Deck"
	}
	return idx, nil
}

func (s *Store) Summary() map[Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[Status]int{}
	for _, rec := range s.records {
		out[rec.Status]++
	}
	return out
}

func (s *Store) RecommendedActions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := []string{}
	for _, rec := range s.records {
		if strings.TrimSpace(rec.NextAction) == "" {
			continue
		}
		actions = append(actions, rec.Name+": "+rec.NextAction)
	}
	return actions
}

func (s *Store) Close() error { return nil }

func (s *Store) recordAt(idx int) (LPRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.records) {
		return LPRecord{}, false
	}
	return s.records[idx], true
}

func (s *Store) replaceAll(records []LPRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

var _ API = (*Store)(nil)
