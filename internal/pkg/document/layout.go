package document

import (
	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
)

// Display widths for the fixed-width table. Truncation here is cosmetic;
// the spreadsheet export and the API carry the full values.
const (
	maxNameWidth     = 25
	maxJobCardWidth  = 18
	maxMarkedByWidth = 15

	// A page break fires when less than this many height units remain
	// for the next table row.
	breakThreshold = 40.0

	// The summary block plus the signature stamp draw taller than a row,
	// so they get their own break threshold.
	summaryThreshold = 80.0
)

// TruncateCell shortens s to max display characters, replacing the tail
// with "..." when it does not fit. Rune-safe for Devanagari worker names.
func TruncateCell(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// RenderMusterRoll draws the muster roll onto w: one table row per report
// row in order, alternating shading, page breaks below the remaining-height
// threshold, then the summary block and signature stamp on the final page.
func RenderMusterRoll(data report.MusterRollData, w DocumentWriter, signaturePath string) {
	w.NewPage()

	for i, row := range data.Rows {
		if w.RemainingHeight() < breakThreshold {
			w.NewPage()
		}
		w.AppendRow([]string{
			TruncateCell(row.WorkerName, maxNameWidth),
			TruncateCell(row.JobCardID, maxJobCardWidth),
			row.Date,
			row.Attendance,
			TruncateCell(row.MarkedBy, maxMarkedByWidth),
			row.Time,
		}, i%2 == 1)
	}

	if w.RemainingHeight() < summaryThreshold {
		w.NewPage()
	}
	w.AppendSummary(data.Summary, data.GeneratedAt)
	w.SignatureStamp(signaturePath)
}
