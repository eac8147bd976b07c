package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
)

// Rate computes the integer attendance rate in percent. Defined as 0 when
// nothing has been marked, which guards the divide-by-zero on empty days.
func Rate(present, absent int) int {
	total := present + absent
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// BuildDailyRoster left-joins a project roster against the day's records.
// Every roster worker appears exactly once: PRESENT or ABSENT when a record
// exists, NOT_MARKED when the supervisor has taken no action yet. The
// function is a pure projection over its inputs.
func BuildDailyRoster(
	projectID string,
	date time.Time,
	roster []worker.Worker,
	records []attendance.Record,
	details map[string]worker.Worker,
	directory map[string]string,
) attendance.DailyRosterResponse {
	byWorker := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byWorker[rec.WorkerID] = rec
	}

	resp := attendance.DailyRosterResponse{
		ProjectID: projectID,
		Date:      date.Format("2006-01-02"),
		Entries:   make([]attendance.RosterEntry, 0, len(roster)),
	}

	for _, w := range roster {
		normalized := worker.Normalize(w, details)
		entry := attendance.RosterEntry{
			WorkerID:   w.ID,
			WorkerName: normalized.Name,
			JobCardID:  normalized.JobCardID,
			Skill:      normalized.Skill,
			Status:     attendance.StatusNotMarked,
		}

		if rec, ok := byWorker[w.ID]; ok {
			entry.Status = rec.Status
			recordID := rec.ID
			entry.RecordID = &recordID
			supervisor := supervisorName(rec, directory)
			entry.SupervisorName = &supervisor
			markedAt := attendance.MarkedAtClock(rec.CreatedAt, time.Local)
			entry.MarkedAtTime = &markedAt

			switch rec.Status {
			case attendance.StatusPresent:
				resp.PresentCount++
			case attendance.StatusAbsent:
				resp.AbsentCount++
			}
		} else {
			resp.NotMarkedCount++
		}

		resp.Entries = append(resp.Entries, entry)
	}

	resp.AttendanceRate = Rate(resp.PresentCount, resp.AbsentCount)
	return resp
}

// BuildRangeSummary groups records by date, accumulating presence counts
// per day while preserving per-record detail for drill-down. Summaries are
// ordered by ascending date; ISO-8601 strings sort date-correctly.
func BuildRangeSummary(
	filter attendance.RangeFilter,
	records []attendance.Record,
	directory map[string]string,
) attendance.RangeSummaryResponse {
	byDate := make(map[string][]attendance.Record)
	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], rec)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	resp := attendance.RangeSummaryResponse{
		ProjectID: filter.ProjectID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Days:      make([]attendance.DailySummary, 0, len(dates)),
	}

	for _, d := range dates {
		day := attendance.DailySummary{
			Date:    d,
			Records: make([]attendance.RecordResponse, 0, len(byDate[d])),
		}
		for _, rec := range byDate[d] {
			switch rec.Status {
			case attendance.StatusPresent:
				day.PresentCount++
			case attendance.StatusAbsent:
				day.AbsentCount++
			}
			day.Records = append(day.Records, mapRecordToResponse(rec, directory))
		}
		resp.TotalPresent += day.PresentCount
		resp.TotalAbsent += day.AbsentCount
		resp.Days = append(resp.Days, day)
	}

	resp.AttendanceRate = Rate(resp.TotalPresent, resp.TotalAbsent)
	return resp
}

// mapRecordToResponse converts a Record entity to RecordResponse, applying
// the display fallback chain once instead of at every render site.
func mapRecordToResponse(rec attendance.Record, directory map[string]string) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:             rec.ID,
		WorkerID:       rec.WorkerID,
		WorkerName:     orNA(rec.WorkerName),
		JobCardID:      orNA(rec.JobCardID),
		Skill:          orNA(rec.Skill),
		ProjectID:      rec.ProjectID,
		Date:           rec.Date.Format("2006-01-02"),
		Status:         rec.Status,
		MarkedBy:       rec.MarkedBy,
		SupervisorName: supervisorName(rec, directory),
		MarkedAtTime:   attendance.MarkedAtClock(rec.CreatedAt, time.Local),
		CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func supervisorName(rec attendance.Record, directory map[string]string) string {
	if rec.SupervisorName != nil && *rec.SupervisorName != "" {
		return *rec.SupervisorName
	}
	if name, ok := directory[rec.MarkedBy]; ok && name != "" {
		return name
	}
	return "N/A"
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
