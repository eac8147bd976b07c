package attendance

import (
	"time"

	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	WorkerID  string `json:"worker_id"`
	ProjectID string `json:"project_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Status    string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != StatusPresent && r.Status != StatusAbsent {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PRESENT or ABSENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditAttendanceRequest flips a marked record to the opposite status. The
// reason is mandatory and is persisted as audit metadata, not on the record.
type EditAttendanceRequest struct {
	ID        string `json:"-"`
	NewStatus string `json:"new_status"`
	Reason    string `json:"reason"`
}

func (r *EditAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "a non-empty edit reason is required",
		})
	}

	if r.NewStatus != StatusPresent && r.NewStatus != StatusAbsent {
		errs = append(errs, validator.ValidationError{
			Field:   "new_status",
			Message: "new_status must be PRESENT or ABSENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID             string `json:"id"`
	WorkerID       string `json:"worker_id"`
	WorkerName     string `json:"worker_name"`
	JobCardID      string `json:"job_card_id"`
	Skill          string `json:"skill"`
	ProjectID      string `json:"project_id"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	MarkedBy       string `json:"marked_by"`
	SupervisorName string `json:"supervisor_name"`
	MarkedAtTime   string `json:"marked_at_time"` // HH:MM from created_at
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// RangeFilter selects a project's records between two dates inclusive.
type RangeFilter struct {
	ProjectID string `json:"project_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	_, _, rangeErrs := validator.ValidateDateRange(f.StartDate, f.EndDate)
	errs = append(errs, rangeErrs...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailySummary is the per-date slice of a range view. It is derived state,
// recomputed from records on every aggregation pass and never persisted.
type DailySummary struct {
	Date         string           `json:"date"`
	PresentCount int              `json:"present_count"`
	AbsentCount  int              `json:"absent_count"`
	Records      []RecordResponse `json:"records"`
}

type RangeSummaryResponse struct {
	ProjectID      string         `json:"project_id"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	TotalPresent   int            `json:"total_present"`
	TotalAbsent    int            `json:"total_absent"`
	AttendanceRate int            `json:"attendance_rate"`
	Days           []DailySummary `json:"days"`
}

// RosterEntry is one roster worker's state in the daily view: a marked
// record, or NOT_MARKED when the supervisor has taken no action yet.
type RosterEntry struct {
	WorkerID       string  `json:"worker_id"`
	WorkerName     string  `json:"worker_name"`
	JobCardID      string  `json:"job_card_id"`
	Skill          string  `json:"skill"`
	Status         string  `json:"status"`
	RecordID       *string `json:"record_id,omitempty"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	MarkedAtTime   *string `json:"marked_at_time,omitempty"`
}

type DailyRosterResponse struct {
	ProjectID      string        `json:"project_id"`
	Date           string        `json:"date"`
	PresentCount   int           `json:"present_count"`
	AbsentCount    int           `json:"absent_count"`
	NotMarkedCount int           `json:"not_marked_count"`
	AttendanceRate int           `json:"attendance_rate"`
	Entries        []RosterEntry `json:"entries"`
}

// MarkedAtClock extracts the HH:MM display time from a record's creation
// timestamp in the given location.
func MarkedAtClock(createdAt time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return createdAt.In(loc).Format("15:04")
}
