package report

import (
	"os"
	"path/filepath"
	"testing"

	"perfclient/reviews"
)

func TestWriteCycleStatistics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.pdf")
	cycle := reviews.ReviewCycle{
		Name:       "Q3 2024",
		ReviewType: reviews.CycleQuarterly,
		StartDate:  "2024-07-01",
		EndDate:    "2024-09-30",
		Status:     reviews.CycleStatusActive,
	}
	stats := map[string]any{
		"total_reviews":     float64(12),
		"completed_reviews": float64(9),
	}

	if err := WriteCycleStatistics(path, cycle, stats); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected a non-empty PDF")
	}
}

func TestWriteCycleStatisticsBadPath(t *testing.T) {
	err := WriteCycleStatistics(filepath.Join(t.TempDir(), "missing", "cycle.pdf"), reviews.ReviewCycle{}, nil)
	if err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
