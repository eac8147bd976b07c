package report

import (
	"context"
)

// ReportService builds export-ready muster roll data. Rendering to a
// concrete document format is the document package's job; building the data
// never mutates aggregation state.
type ReportService interface {
	BuildMusterRoll(ctx context.Context, req MusterRollRequest) (MusterRollData, error)
}
