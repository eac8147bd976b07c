package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Mark creates a record for a (worker, project, date) key; the
	// supervisor identity is resolved from the caller's own claims
	Mark(ctx context.Context, req MarkAttendanceRequest) (RecordResponse, error)

	// Edit flips a marked record to the opposite status with a mandatory
	// audit reason, then re-reads the record from the store
	Edit(ctx context.Context, req EditAttendanceRequest) (RecordResponse, error)

	// DailyRoster produces the per-worker view for one project and date,
	// with unmarked workers tagged NOT_MARKED
	DailyRoster(ctx context.Context, projectID string, date string) (DailyRosterResponse, error)

	// RangeSummary produces per-date presence summaries over a date range
	RangeSummary(ctx context.Context, filter RangeFilter) (RangeSummaryResponse, error)
}
