// Package report renders fetched review data into PDF documents for
// HR distribution.
package report

import (
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"perfclient/reviews"
)

// WriteCycleStatistics renders a one-page summary of a review cycle
// and its statistics payload to path.
func WriteCycleStatistics(path string, cycle reviews.ReviewCycle, stats map[string]any) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Review Cycle Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Cycle: %s (%s)", cycle.Name, cycle.ReviewType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", cycle.StartDate, cycle.EndDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", cycle.Status))
	pdf.Ln(10)

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %v", key, stats[key]))
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write cycle report: %w", err)
	}
	return nil
}
