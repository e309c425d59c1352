// ABOUTME: Personal-record analysis over best-result history.
// ABOUTME: Flags the days on which an exercise's best weight beat every earlier day.
package progress

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/lift/internal/models"
)

// BestResultsReader is the store query the analyzer needs.
type BestResultsReader interface {
	GetBestResults(ctx context.Context, exerciseID int64) ([]*models.BestResult, error)
}

// History is an exercise's per-day bests with record days flagged.
type History struct {
	ExerciseID int64                `json:"exercise_id"`
	Results    []*models.BestResult `json:"results"`
	// Record is the heaviest result so far, nil without history.
	Record *models.BestResult `json:"record,omitempty"`
}

// Analyzer derives progress views from stored results.
type Analyzer struct {
	repo BestResultsReader
}

// NewAnalyzer returns an Analyzer reading from repo.
func NewAnalyzer(repo BestResultsReader) *Analyzer {
	return &Analyzer{repo: repo}
}

// History loads an exercise's best results, newest first, and marks records.
func (a *Analyzer) History(ctx context.Context, exerciseID int64) (*History, error) {
	results, err := a.repo.GetBestResults(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("load best results: %w", err)
	}
	record := MarkRecords(results)
	return &History{ExerciseID: exerciseID, Results: results, Record: record}, nil
}

// MarkRecords sets IsRecord on every result whose weight is strictly heavier
// than all results on earlier dates, and returns the latest record.
// The slice order is left untouched.
func MarkRecords(results []*models.BestResult) *models.BestResult {
	chrono := make([]*models.BestResult, len(results))
	copy(chrono, results)
	sort.SliceStable(chrono, func(i, j int) bool { return chrono[i].Date < chrono[j].Date })

	var record *models.BestResult
	for _, r := range chrono {
		r.IsRecord = record == nil || r.Weight > record.Weight
		if r.IsRecord {
			record = r
		}
	}
	return record
}
