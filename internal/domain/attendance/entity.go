package attendance

import (
	"time"
)

// Marked record statuses. NotMarked never appears on a stored record; it
// tags roster workers with no record yet in the aggregated daily view.
const (
	StatusPresent   = "PRESENT"
	StatusAbsent    = "ABSENT"
	StatusNotMarked = "NOT_MARKED"
)

type Record struct {
	ID        string
	WorkerID  string
	ProjectID string
	Date      time.Time
	Status    string
	MarkedBy  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName     *string
	JobCardID      *string
	Skill          *string
	SupervisorName *string
}

// Edit is the audit row persisted with every status flip. It is write-only
// metadata; it never travels back on Record.
type Edit struct {
	ID             string
	RecordID       string
	PreviousStatus string
	NewStatus      string
	Reason         string
	EditedBy       string
	EditedAt       time.Time
}

// Inverse returns the opposite of a binary marked status.
func Inverse(status string) string {
	if status == StatusPresent {
		return StatusAbsent
	}
	return StatusPresent
}
