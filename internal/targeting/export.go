package targeting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// ExportColumns is the daily-list artifact schema, in order.
var ExportColumns = []string{
	"LP_Name", "Firm", "Email", "LP_Category", "Interests",
	"Industries", "EBITDA_Range", "Revenue_Range",
	"Investment_Preferences", "Deal_History", "Confidence_Score",
	"Status", "Next_Action", "Priority_Score",
}

// WriteCSV emits the daily target list as a flat tabular artifact. Numeric
// columns round-trip losslessly: confidence stays an integer and the
// priority score keeps its exact decimal representation.
func WriteCSV(w io.Writer, targets []Target) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return err
	}
	for _, t := range targets {
		row := []string{
			t.Name, t.Firm, t.Email, string(t.Category), t.Interests,
			t.Industries, t.EBITDARange, t.RevenueRange,
			t.Preferences, t.DealHistory, strconv.Itoa(t.Confidence),
			string(t.Status), t.NextAction, formatScore(t.PriorityScore),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, targets []Target) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, targets)
}

// ReadCSV parses a previously exported daily list back into targets.
func ReadCSV(r io.Reader) ([]Target, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Target{}, nil
	}

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

	targets := make([]Target, 0, len(rows)-1)
	for _, row := range rows[1:] {
		confidence, _ := strconv.Atoi(cell(row, "Confidence_Score"))
		score, _ := strconv.ParseFloat(cell(row, "Priority_Score"), 64)
		targets = append(targets, Target{
			LPRecord: lpstore.LPRecord{
				Name:         cell(row, "LP_Name"),
				Firm:         cell(row, "Firm"),
				Email:        cell(row, "Email"),
				Category:     lpstore.Category(cell(row, "LP_Category")),
				Interests:    cell(row, "Interests"),
				Industries:   cell(row, "Industries"),
				EBITDARange:  cell(row, "EBITDA_Range"),
				RevenueRange: cell(row, "Revenue_Range"),
				Preferences:  cell(row, "Investment_Preferences"),
				DealHistory:  cell(row, "Deal_History"),
				Confidence:   confidence,
				Status:       lpstore.Status(cell(row, "Status")),
				NextAction:   cell(row, "Next_Action"),
			},
			PriorityScore: score,
		})
	}
	return targets, nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
