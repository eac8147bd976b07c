package report

import (
	"fmt"
	"strings"

	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
)

// ========================================
// MUSTER ROLL
// ========================================

type MusterRollRequest struct {
	ProjectID string `json:"project_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Search    string `json:"search,omitempty"`
}

func (r *MusterRollRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one roster worker's line on the muster roll. Values here are the
// full, untruncated export data; truncation for the fixed-width document is
// cosmetic and applied at draw time only.
type Row struct {
	WorkerName  string `json:"worker_name"`
	JobCardID   string `json:"job_card_id"`
	ProjectName string `json:"project_name"`
	Date        string `json:"date"`
	Attendance  string `json:"attendance"` // PRESENT, ABSENT or "Not Marked"
	MarkedBy    string `json:"marked_by"`
	Time        string `json:"time"` // HH:MM, "N/A" if unmarked
}

type Summary struct {
	TotalWorkers   int `json:"total_workers"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	AttendanceRate int `json:"attendance_rate"`
}

type MusterRollData struct {
	ProjectName string  `json:"project_name"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	GeneratedAt string  `json:"generated_at"`
	Rows        []Row   `json:"rows"`
	Summary     Summary `json:"summary"`
}

// Filename derives the deterministic export name
// {ProjectName}_Attendance_{date}.{ext} with spaces flattened so the name
// survives Content-Disposition headers and filesystems.
func (d MusterRollData) Filename(ext string) string {
	name := strings.ReplaceAll(strings.TrimSpace(d.ProjectName), " ", "-")
	return fmt.Sprintf("%s_Attendance_%s.%s", name, d.Date, ext)
}
