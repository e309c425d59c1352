// ABOUTME: Tests for personal-record analysis.
// ABOUTME: Covers record marking order and error propagation.
package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/harperreed/lift/internal/models"
)

type fakeReader struct {
	results []*models.BestResult
	err     error
}

func (f fakeReader) GetBestResults(context.Context, int64) ([]*models.BestResult, error) {
	return f.results, f.err
}

func TestMarkRecords(t *testing.T) {
	// Newest first, as returned by the store.
	results := []*models.BestResult{
		{Date: "2024-03-20", Weight: 82.5},
		{Date: "2024-03-15", Weight: 80},
		{Date: "2024-03-10", Weight: 80},
		{Date: "2024-03-05", Weight: 75},
		{Date: "2024-03-01", Weight: 77.5},
	}

	record := MarkRecords(results)

	want := []bool{true, false, true, false, true}
	for i, r := range results {
		if r.IsRecord != want[i] {
			t.Errorf("%s IsRecord = %v, want %v", r.Date, r.IsRecord, want[i])
		}
	}
	if record == nil || record.Date != "2024-03-20" {
		t.Errorf("record = %+v, want 2024-03-20", record)
	}
	if results[0].Date != "2024-03-20" {
		t.Error("input order changed")
	}
}

func TestMarkRecordsEmpty(t *testing.T) {
	if r := MarkRecords(nil); r != nil {
		t.Errorf("expected nil record, got %+v", r)
	}
}

func TestAnalyzerHistory(t *testing.T) {
	a := NewAnalyzer(fakeReader{results: []*models.BestResult{
		{Date: "2024-03-02", Weight: 100, Reps: 3},
		{Date: "2024-03-01", Weight: 90, Reps: 5},
	}})

	h, err := a.History(context.Background(), 7)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if h.ExerciseID != 7 || len(h.Results) != 2 {
		t.Errorf("unexpected history %+v", h)
	}
	if h.Record == nil || h.Record.Weight != 100 {
		t.Errorf("record = %+v", h.Record)
	}
}

func TestAnalyzerHistoryError(t *testing.T) {
	a := NewAnalyzer(fakeReader{err: errors.New("boom")})

	if _, err := a.History(context.Background(), 1); err == nil {
		t.Error("expected error")
	}
}
