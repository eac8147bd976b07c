package report

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, panchayatCode string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id":        "u1",
		"panchayat_code": panchayatCode,
		"type":           "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func strPtr(s string) *string { return &s }

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Exists(ctx context.Context, workerID, projectID string, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, projectID string, startDate, endDate time.Time) ([]attendance.Record, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListForDate(ctx context.Context, projectID string, date time.Time) ([]attendance.Record, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ToggleStatus(ctx context.Context, recordID string, newStatus string, edit attendance.Edit) error {
	return nil
}

func (f *fakeAttendanceRepo) CountPresent(ctx context.Context, projectID string, startDate, endDate time.Time) (int64, error) {
	return 0, nil
}

type fakeWorkerRepo struct {
	roster []worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string, panchayatCode string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) GetByIDs(ctx context.Context, ids []string, panchayatCode string) (map[string]worker.Worker, error) {
	out := make(map[string]worker.Worker)
	for _, w := range f.roster {
		out[w.ID] = w
	}
	return out, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context, filter worker.WorkerFilter, panchayatCode string) ([]worker.Worker, int64, error) {
	return f.roster, int64(len(f.roster)), nil
}

func (f *fakeWorkerRepo) ListAssigned(ctx context.Context, projectID string, onDate time.Time, panchayatCode string) ([]worker.Worker, error) {
	return f.roster, nil
}

func (f *fakeWorkerRepo) Assign(ctx context.Context, projectID string, workerID string, panchayatCode string) error {
	return nil
}

func (f *fakeWorkerRepo) Unassign(ctx context.Context, projectID string, workerID string, panchayatCode string) error {
	return nil
}

type fakeProjectRepo struct {
	project project.Project
}

func (f *fakeProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string, panchayatCode string) (project.Project, error) {
	if f.project.ID != id || f.project.PanchayatCode != panchayatCode {
		return project.Project{}, project.ErrProjectNotFound
	}
	return f.project, nil
}

func (f *fakeProjectRepo) List(ctx context.Context, filter project.ProjectFilter, panchayatCode string) ([]project.Project, int64, error) {
	return []project.Project{f.project}, 1, nil
}

func (f *fakeProjectRepo) ActivatePending(ctx context.Context, asOf time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeProjectRepo) CompleteExpired(ctx context.Context, asOf time.Time) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	directory map[string]string
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Directory(ctx context.Context, ids []string) (map[string]string, error) {
	return f.directory, nil
}

func newTestService(roster []worker.Worker, records []attendance.Record) report.ReportService {
	projRepo := &fakeProjectRepo{project: project.Project{
		ID:            "p1",
		Name:          "Pond Desilting",
		Location:      "Rampur GP",
		PanchayatCode: "GP-042",
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		WagePerWorker: decimal.NewFromInt(300),
	}}
	return NewReportService(
		&fakeAttendanceRepo{records: records},
		&fakeWorkerRepo{roster: roster},
		projRepo,
		&fakeUserRepo{directory: map[string]string{"u1": "Anil Sharma"}},
	)
}

func TestBuildMusterRollOneRowPerRosterWorker(t *testing.T) {
	markedAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	roster := []worker.Worker{
		{ID: "w1", Name: "Ramesh Kumar", JobCardID: strPtr("UP-05-001-002/123")},
		{ID: "w2", Name: "Sita Devi"},
		{ID: "w3", Name: "Mohan Lal"},
	}
	records := []attendance.Record{
		{ID: "r1", WorkerID: "w1", ProjectID: "p1", Status: attendance.StatusPresent, MarkedBy: "u1", CreatedAt: markedAt},
		{ID: "r2", WorkerID: "w2", ProjectID: "p1", Status: attendance.StatusAbsent, MarkedBy: "u1", CreatedAt: markedAt},
	}
	svc := newTestService(roster, records)

	data, err := svc.BuildMusterRoll(authedContext(t, "GP-042"), report.MusterRollRequest{
		ProjectID: "p1",
		Date:      "2026-03-10",
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, len(roster))

	assert.Equal(t, "Pond Desilting", data.ProjectName)
	assert.Equal(t, "Rampur GP", data.Location)

	marked := data.Rows[0]
	assert.Equal(t, "Ramesh Kumar", marked.WorkerName)
	assert.Equal(t, "UP-05-001-002/123", marked.JobCardID)
	assert.Equal(t, attendance.StatusPresent, marked.Attendance)
	assert.Equal(t, "Anil Sharma", marked.MarkedBy)
	assert.Equal(t, "09:30", marked.Time)

	unmarked := data.Rows[2]
	assert.Equal(t, "Not Marked", unmarked.Attendance)
	assert.Equal(t, "N/A", unmarked.JobCardID)
	assert.Equal(t, "N/A", unmarked.MarkedBy)
	assert.Equal(t, "N/A", unmarked.Time)

	assert.Equal(t, 3, data.Summary.TotalWorkers)
	assert.Equal(t, 1, data.Summary.Present)
	assert.Equal(t, 1, data.Summary.Absent)
	assert.Equal(t, 50, data.Summary.AttendanceRate)
}

func TestBuildMusterRollSearchFilter(t *testing.T) {
	roster := []worker.Worker{
		{ID: "w1", Name: "Ramesh Kumar", JobCardID: strPtr("UP-05-001-002/123")},
		{ID: "w2", Name: "Sita Devi"},
	}
	svc := newTestService(roster, nil)

	data, err := svc.BuildMusterRoll(authedContext(t, "GP-042"), report.MusterRollRequest{
		ProjectID: "p1",
		Date:      "2026-03-10",
		Search:    "ramesh",
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Ramesh Kumar", data.Rows[0].WorkerName)
	assert.Equal(t, 1, data.Summary.TotalWorkers)
}

func TestBuildMusterRollSearchByJobCard(t *testing.T) {
	roster := []worker.Worker{
		{ID: "w1", Name: "Ramesh Kumar", JobCardID: strPtr("UP-05-001-002/123")},
		{ID: "w2", Name: "Sita Devi", JobCardID: strPtr("UP-05-001-002/456")},
	}
	svc := newTestService(roster, nil)

	data, err := svc.BuildMusterRoll(authedContext(t, "GP-042"), report.MusterRollRequest{
		ProjectID: "p1",
		Date:      "2026-03-10",
		Search:    "002/456",
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Sita Devi", data.Rows[0].WorkerName)
}

func TestBuildMusterRollUnknownProject(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.BuildMusterRoll(authedContext(t, "GP-042"), report.MusterRollRequest{
		ProjectID: "p404",
		Date:      "2026-03-10",
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestBuildMusterRollCrossPanchayatDenied(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.BuildMusterRoll(authedContext(t, "GP-999"), report.MusterRollRequest{
		ProjectID: "p1",
		Date:      "2026-03-10",
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}
