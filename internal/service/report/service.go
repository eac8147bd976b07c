package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	attendancesvc "github.com/shramsetu/rozgar-backend-go/internal/service/attendance"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	worker.WorkerRepository
	project.ProjectRepository
	user.UserRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	projectRepo project.ProjectRepository,
	userRepo user.UserRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
		ProjectRepository:    projectRepo,
		UserRepository:       userRepo,
	}
}

// BuildMusterRoll assembles the export dataset for one project and date.
// One row per roster worker surviving the search filter, whether marked or
// not; workers without a record export as "Not Marked" with "N/A" fills.
func (r *ReportServiceImpl) BuildMusterRoll(ctx context.Context, req report.MusterRollRequest) (report.MusterRollData, error) {
	if err := req.Validate(); err != nil {
		return report.MusterRollData{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return report.MusterRollData{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	panchayatCode, ok := claims["panchayat_code"].(string)
	if !ok || panchayatCode == "" {
		return report.MusterRollData{}, fmt.Errorf("panchayat_code claim is missing or invalid")
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	proj, err := r.ProjectRepository.GetByID(ctx, req.ProjectID, panchayatCode)
	if err != nil {
		return report.MusterRollData{}, err
	}

	roster, err := r.WorkerRepository.ListAssigned(ctx, req.ProjectID, date, panchayatCode)
	if err != nil {
		return report.MusterRollData{}, fmt.Errorf("failed to get project roster: %w", err)
	}
	roster = filterRoster(roster, req.Search)

	records, err := r.AttendanceRepository.ListForDate(ctx, req.ProjectID, date)
	if err != nil {
		return report.MusterRollData{}, fmt.Errorf("failed to get attendance records: %w", err)
	}
	byWorker := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byWorker[rec.WorkerID] = rec
	}

	directory, err := r.markerDirectory(ctx, records)
	if err != nil {
		return report.MusterRollData{}, err
	}

	data := report.MusterRollData{
		ProjectName: proj.Name,
		Location:    proj.Location,
		Date:        req.Date,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Rows:        make([]report.Row, 0, len(roster)),
	}

	for _, w := range roster {
		row := report.Row{
			WorkerName:  w.Name,
			JobCardID:   "N/A",
			ProjectName: proj.Name,
			Date:        req.Date,
			Attendance:  "Not Marked",
			MarkedBy:    "N/A",
			Time:        "N/A",
		}
		if w.JobCardID != nil && *w.JobCardID != "" {
			row.JobCardID = *w.JobCardID
		}

		if rec, found := byWorker[w.ID]; found {
			row.Attendance = rec.Status
			row.Time = attendance.MarkedAtClock(rec.CreatedAt, nil)
			if name, ok := directory[rec.MarkedBy]; ok && name != "" {
				row.MarkedBy = name
			}
			switch rec.Status {
			case attendance.StatusPresent:
				data.Summary.Present++
			case attendance.StatusAbsent:
				data.Summary.Absent++
			}
		}

		data.Rows = append(data.Rows, row)
	}

	data.Summary.TotalWorkers = len(roster)
	data.Summary.AttendanceRate = attendancesvc.Rate(data.Summary.Present, data.Summary.Absent)

	return data, nil
}

// filterRoster keeps workers whose name or job card matches the search
// text, case-insensitively. An empty search keeps everyone.
func filterRoster(roster []worker.Worker, search string) []worker.Worker {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return roster
	}

	filtered := make([]worker.Worker, 0, len(roster))
	for _, w := range roster {
		if strings.Contains(strings.ToLower(w.Name), search) {
			filtered = append(filtered, w)
			continue
		}
		if w.JobCardID != nil && strings.Contains(strings.ToLower(*w.JobCardID), search) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

func (r *ReportServiceImpl) markerDirectory(ctx context.Context, records []attendance.Record) (map[string]string, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.MarkedBy]; ok {
			continue
		}
		seen[rec.MarkedBy] = struct{}{}
		ids = append(ids, rec.MarkedBy)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	directory, err := r.UserRepository.Directory(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve marker directory: %w", err)
	}
	return directory, nil
}
