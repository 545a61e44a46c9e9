package lpstore

import (
	"strings"
	"testing"
	"time"
)

var storeNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestStore() *Store {
	s := NewStore()
	s.nowFn = func() time.Time { return storeNow }
	return s
}

func TestImportSkipsExistingFirms(t *testing.T) {
	s := newTestStore()

	added, err := s.Import([]LPRecord{
		{Name: "Jane Roe", Firm: "Acme Capital"},
		{Name: "John Doe", Firm: "Beta Partners"},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}

	// Re-importing an existing firm neither duplicates nor overwrites it.
	added, err = s.Import([]LPRecord{
		{Name: "Someone Else", Firm: "Acme Capital"},
		{Name: "New Person", Firm: "Gamma Fund"},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}

	records := s.List()
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Name != "Jane Roe" {
		t.Fatalf("existing record was overwritten: %+v", records[0])
	}
}

func TestImportFirmMatchIsCaseSensitive(t *testing.T) {
	s := newTestStore()
	s.Import([]LPRecord{{Name: "A", Firm: "Acme Capital"}})

	added, _ := s.Import([]LPRecord{{Name: "B", Firm: "ACME CAPITAL"}})
	if added != 1 {
		t.Fatalf("differently-cased firm should import as new, added = %d", added)
	}
}

func TestImportDedupesWithinBatch(t *testing.T) {
	s := newTestStore()
	added, _ := s.Import([]LPRecord{
		{Name: "A", Firm: "Acme Capital"},
		{Name: "B", Firm: "Acme Capital"},
	})
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
}

func TestImportStampsDiscoveryDate(t *testing.T) {
	s := newTestStore()
	s.Import([]LPRecord{
		{Name: "A", Firm: "Acme"},
		{Name: "B", Firm: "Beta", DiscoveryDate: "2025-12-01"},
	})

	records := s.List()
	if records[0].DiscoveryDate != "2026-03-15" {
		t.Fatalf("blank discovery date should be stamped, got %q", records[0].DiscoveryDate)
	}
	if records[1].DiscoveryDate != "2025-12-01" {
		t.Fatalf("existing discovery date should be preserved, got %q", records[1].DiscoveryDate)
	}
}

func TestLogInteractionTransitions(t *testing.T) {
	cases := []struct {
		kind       string
		wantStatus Status
		wantAction string
	}{
		{InteractionInitialOutreach, StatusContacted, "Follow-up in 1 week"},
		{InteractionFollowUp, StatusEngaged, "Schedule Meeting"},
		{InteractionMeeting, StatusInDiscussion, "Send Deck"},
	}
	for _, tc := range cases {
		s := newTestStore()
		s.Import([]LPRecord{{Name: "Jane Roe", Firm: "Acme", Status: StatusProspect}})

		if err := s.LogInteraction("Jane Roe", tc.kind, "went well"); err != nil {
			t.Fatalf("LogInteraction(%s): %v", tc.kind, err)
		}
		rec := s.List()[0]
		if rec.Status != tc.wantStatus {
			t.Errorf("%s: status = %q, want %q", tc.kind, rec.Status, tc.wantStatus)
		}
		if rec.NextAction != tc.wantAction {
			t.Errorf("%s: next action = %q, want %q", tc.kind, rec.NextAction, tc.wantAction)
		}
		if rec.LastContact != "2026-03-15 10:30:00" {
			t.Errorf("%s: last contact = %q", tc.kind, rec.LastContact)
		}
		if !strings.Contains(rec.Notes, "2026-03-15 10:30:00: "+tc.kind+" - went well") {
			t.Errorf("%s: notes missing interaction line: %q", tc.kind, rec.Notes)
		}
	}
}

func TestLogInteractionUnknownKindKeepsStatus(t *testing.T) {
	s := newTestStore()
	s.Import([]LPRecord{{Name: "Jane Roe", Firm: "Acme", Status: StatusProspect, NextAction: "Initial Outreach"}})

	if err := s.LogInteraction("Jane Roe", "Email", "sent intro"); err != nil {
		t.Fatalf("LogInteraction: %v", err)
	}
	rec := s.List()[0]
	if rec.Status != StatusProspect {
		t.Fatalf("unrecognized kind should not change status, got %q", rec.Status)
	}
	if rec.NextAction != "Initial Outreach" {
		t.Fatalf("unrecognized kind should not change next action, got %q", rec.NextAction)
	}
	if !strings.Contains(rec.Notes, "Email - sent intro") {
		t.Fatalf("interaction should still be appended to notes: %q", rec.Notes)
	}
}

func TestLogInteractionUnknownName(t *testing.T) {
	s := newTestStore()
	if err := s.LogInteraction("Nobody", InteractionMeeting, ""); err == nil {
		t.Fatalf("expected error for unknown LP")
	}
}

func TestSummaryCountsByStatus(t *testing.T) {
	s := newTestStore()
	s.Import([]LPRecord{
		{Name: "A", Firm: "F1", Status: StatusProspect},
		{Name: "B", Firm: "F2", Status: StatusProspect},
		{Name: "C", Firm: "F3", Status: StatusContacted},
	})

	got := s.Summary()
	if got[StatusProspect] != 2 || got[StatusContacted] != 1 {
		t.Fatalf("summary = %v", got)
	}
}

func TestRecommendedActionsSkipsBlank(t *testing.T) {
	s := newTestStore()
	s.Import([]LPRecord{
		{Name: "A", Firm: "F1", NextAction: "Initial Outreach"},
		{Name: "B", Firm: "F2", NextAction: "  "},
		{Name: "C", Firm: "F3", NextAction: "Send Deck"},
	})

	got := s.RecommendedActions()
	want := []string{"A: Initial Outreach", "C: Send Deck"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.Import([]LPRecord{{Name: "A", Firm: "F1"}})

	list := s.List()
	list[0].Name = "mutated"
	if s.List()[0].Name != "A" {
		t.Fatalf("List should return a copy of the record set")
	}
}
