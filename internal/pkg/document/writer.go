package document

import (
	"io"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
)

// DocumentWriter is the drawing surface the muster roll layout renders
// onto. The layout engine owns pagination and cell content; the writer owns
// fonts, colors and the physical page.
type DocumentWriter interface {
	// NewPage opens a fresh page and draws the report header and the
	// table head on it
	NewPage()

	// AppendRow draws one table row; shaded alternates the background
	AppendRow(cells []string, shaded bool)

	// AppendSummary draws the totals block after the last row
	AppendSummary(summary report.Summary, generatedAt string)

	// SignatureStamp draws the supervisor signature area. When the asset
	// at path cannot be used the writer falls back to a drawn line.
	SignatureStamp(path string)

	// RemainingHeight reports the drawable height left on the page, in
	// the writer's own units
	RemainingHeight() float64

	// Save writes the finished document
	Save(w io.Writer) error
}
