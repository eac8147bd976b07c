package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Queries are scoped through the project's panchayat; records themselves
// are never deleted.
type AttendanceRepository interface {
	// Create creates a new attendance record; the (worker, project, date)
	// uniqueness invariant is enforced by the store
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record with its display joins
	GetByID(ctx context.Context, id string) (Record, error)

	// Exists reports whether a record already exists for the key
	Exists(ctx context.Context, workerID, projectID string, date time.Time) (bool, error)

	// ListRange retrieves enriched records for a project between two dates
	// inclusive, ordered by date ascending
	ListRange(ctx context.Context, projectID string, startDate, endDate time.Time) ([]Record, error)

	// ListForDate retrieves enriched records for a project on a single date
	ListForDate(ctx context.Context, projectID string, date time.Time) ([]Record, error)

	// ToggleStatus persists a status flip together with its audit row in a
	// single transaction
	ToggleStatus(ctx context.Context, recordID string, newStatus string, edit Edit) error

	// CountPresent counts PRESENT records for a project in a date range
	CountPresent(ctx context.Context, projectID string, startDate, endDate time.Time) (int64, error)
}
