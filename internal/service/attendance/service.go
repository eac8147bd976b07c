package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	worker.WorkerRepository
	project.ProjectRepository
	user.UserRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	projectRepo project.ProjectRepository,
	userRepo user.UserRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
		ProjectRepository:    projectRepo,
		UserRepository:       userRepo,
	}
}

// claimsFromContext extracts the caller's identity from JWT claims. The
// supervisor identity is never taken from the request body.
func claimsFromContext(ctx context.Context) (userID string, panchayatCode string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	panchayatCode, ok = claims["panchayat_code"].(string)
	if !ok || panchayatCode == "" {
		return "", "", fmt.Errorf("panchayat_code claim is missing or invalid")
	}

	return userID, panchayatCode, nil
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	userID, panchayatCode, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	// Compared as ISO date strings so "today" follows the server's local
	// calendar day, not UTC midnight.
	if req.Date > time.Now().Format("2006-01-02") {
		return attendance.RecordResponse{}, attendance.ErrFutureDate
	}

	proj, err := a.ProjectRepository.GetByID(ctx, req.ProjectID, panchayatCode)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get project: %w", err)
	}

	if !proj.IsActiveOn(date) {
		return attendance.RecordResponse{}, project.ErrOutsideProjectWindow
	}

	roster, err := a.WorkerRepository.ListAssigned(ctx, req.ProjectID, date, panchayatCode)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get project roster: %w", err)
	}
	onRoster := false
	for _, w := range roster {
		if w.ID == req.WorkerID {
			onRoster = true
			break
		}
	}
	if !onRoster {
		return attendance.RecordResponse{}, attendance.ErrWorkerOffRoster
	}

	exists, err := a.AttendanceRepository.Exists(ctx, req.WorkerID, req.ProjectID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return attendance.RecordResponse{}, attendance.ErrAlreadyMarked
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		WorkerID:  req.WorkerID,
		ProjectID: req.ProjectID,
		Date:      date,
		Status:    req.Status,
		MarkedBy:  userID,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	// Read back with display joins so the response matches later fetches
	enriched, err := a.AttendanceRepository.GetByID(ctx, created.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get created attendance: %w", err)
	}

	return mapRecordToResponse(enriched, nil), nil
}

// Edit implements attendance.AttendanceService. A marked record may only
// flip to the opposite status, with a mandatory audit reason; no optimistic
// state is kept, the record is re-read after the server confirms the write.
func (a *AttendanceServiceImpl) Edit(ctx context.Context, req attendance.EditAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.NewStatus == rec.Status {
		return attendance.RecordResponse{}, attendance.ErrStatusUnchanged
	}

	edit := attendance.Edit{
		ID:             uuid.NewString(),
		RecordID:       rec.ID,
		PreviousStatus: rec.Status,
		NewStatus:      req.NewStatus,
		Reason:         req.Reason,
		EditedBy:       userID,
		EditedAt:       time.Now(),
	}

	if err := a.AttendanceRepository.ToggleStatus(ctx, rec.ID, req.NewStatus, edit); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	// Invalidate-and-reload: derived summaries are recomputed from the
	// store on the next aggregation pass, never patched in place
	updated, err := a.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapRecordToResponse(updated, nil), nil
}

// DailyRoster implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyRoster(ctx context.Context, projectID string, dateStr string) (attendance.DailyRosterResponse, error) {
	_, panchayatCode, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.DailyRosterResponse{}, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	if _, err := a.ProjectRepository.GetByID(ctx, projectID, panchayatCode); err != nil {
		return attendance.DailyRosterResponse{}, err
	}

	roster, err := a.WorkerRepository.ListAssigned(ctx, projectID, date, panchayatCode)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to get project roster: %w", err)
	}

	records, err := a.AttendanceRepository.ListForDate(ctx, projectID, date)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	details, err := a.WorkerRepository.GetByIDs(ctx, workerIDs(roster), panchayatCode)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to get worker details: %w", err)
	}

	directory, err := a.supervisorDirectory(ctx, records)
	if err != nil {
		return attendance.DailyRosterResponse{}, err
	}

	return BuildDailyRoster(projectID, date, roster, records, details, directory), nil
}

// RangeSummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RangeSummary(ctx context.Context, filter attendance.RangeFilter) (attendance.RangeSummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.RangeSummaryResponse{}, err
	}

	_, panchayatCode, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RangeSummaryResponse{}, err
	}

	if _, err := a.ProjectRepository.GetByID(ctx, filter.ProjectID, panchayatCode); err != nil {
		return attendance.RangeSummaryResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", filter.StartDate)
	endDate, _ := time.Parse("2006-01-02", filter.EndDate)

	records, err := a.AttendanceRepository.ListRange(ctx, filter.ProjectID, startDate, endDate)
	if err != nil {
		return attendance.RangeSummaryResponse{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	directory, err := a.supervisorDirectory(ctx, records)
	if err != nil {
		return attendance.RangeSummaryResponse{}, err
	}

	return BuildRangeSummary(filter, records, directory), nil
}

func (a *AttendanceServiceImpl) supervisorDirectory(ctx context.Context, records []attendance.Record) (map[string]string, error) {
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

	directory, err := a.UserRepository.Directory(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve supervisor directory: %w", err)
	}
	return directory, nil
}

func workerIDs(roster []worker.Worker) []string {
	ids := make([]string, 0, len(roster))
	for _, w := range roster {
		ids = append(ids, w.ID)
	}
	return ids
}
