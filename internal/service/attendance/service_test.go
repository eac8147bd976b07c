package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, userID, panchayatCode string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id":        userID,
		"panchayat_code": panchayatCode,
		"type":           "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

type fakeAttendanceRepo struct {
	records     map[string]attendance.Record
	edits       []attendance.Edit
	toggleCalls int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.WorkerID == record.WorkerID && rec.ProjectID == record.ProjectID && rec.Date.Equal(record.Date) {
			return attendance.Record{}, attendance.ErrAlreadyMarked
		}
	}
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) Exists(ctx context.Context, workerID, projectID string, date time.Time) (bool, error) {
	for _, rec := range f.records {
		if rec.WorkerID == workerID && rec.ProjectID == projectID && rec.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, projectID string, startDate, endDate time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.ProjectID == projectID && !rec.Date.Before(startDate) && !rec.Date.After(endDate) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListForDate(ctx context.Context, projectID string, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.ProjectID == projectID && rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ToggleStatus(ctx context.Context, recordID string, newStatus string, edit attendance.Edit) error {
	f.toggleCalls++
	rec, ok := f.records[recordID]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	rec.Status = newStatus
	rec.UpdatedAt = time.Now()
	f.records[recordID] = rec
	f.edits = append(f.edits, edit)
	return nil
}

func (f *fakeAttendanceRepo) CountPresent(ctx context.Context, projectID string, startDate, endDate time.Time) (int64, error) {
	var count int64
	for _, rec := range f.records {
		if rec.ProjectID == projectID && rec.Status == attendance.StatusPresent &&
			!rec.Date.Before(startDate) && !rec.Date.After(endDate) {
			count++
		}
	}
	return count, nil
}

type fakeWorkerRepo struct {
	roster []worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string, panchayatCode string) (worker.Worker, error) {
	for _, w := range f.roster {
		if w.ID == id {
			return w, nil
		}
	}
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
	name, ok := f.directory[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return user.User{ID: id, Name: name}, nil
}

func (f *fakeUserRepo) Directory(ctx context.Context, ids []string) (map[string]string, error) {
	return f.directory, nil
}

func newTestService(attRepo *fakeAttendanceRepo, roster []worker.Worker) attendance.AttendanceService {
	projRepo := &fakeProjectRepo{project: project.Project{
		ID:            "p1",
		Name:          "Pond Desilting",
		PanchayatCode: "GP-042",
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:        project.StatusActive,
		WagePerWorker: decimal.NewFromInt(300),
	}}
	return NewAttendanceService(attRepo, &fakeWorkerRepo{roster: roster}, projRepo, &fakeUserRepo{directory: map[string]string{"u1": "Anil"}})
}

func TestMarkCreatesRecordWithCallerIdentity(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1", Name: "Ramesh"}})
	ctx := authedContext(t, "u1", "GP-042")

	resp, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      "2026-03-10",
		Status:    attendance.StatusPresent,
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "u1", resp.MarkedBy)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Len(t, attRepo.records, 1)
}

func TestMarkRejectsDuplicate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1", Name: "Ramesh"}})
	ctx := authedContext(t, "u1", "GP-042")

	req := attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      "2026-03-10",
		Status:    attendance.StatusPresent,
	}

	_, err := svc.Mark(ctx, req)
	require.NoError(t, err)

	_, err = svc.Mark(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
	assert.Len(t, attRepo.records, 1)
}

func TestMarkRejectsOffRosterWorker(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1", Name: "Ramesh"}})
	ctx := authedContext(t, "u1", "GP-042")

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w99",
		ProjectID: "p1",
		Date:      "2026-03-10",
		Status:    attendance.StatusAbsent,
	})
	assert.ErrorIs(t, err, attendance.ErrWorkerOffRoster)
	assert.Empty(t, attRepo.records)
}

func TestMarkRejectsDateOutsideProjectWindow(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1", Name: "Ramesh"}})
	ctx := authedContext(t, "u1", "GP-042")

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      "2026-04-15",
		Status:    attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, project.ErrOutsideProjectWindow)
}

func TestMarkRejectsFutureDate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	future := time.Now().AddDate(0, 0, 7)
	projRepo := &fakeProjectRepo{project: project.Project{
		ID:            "p1",
		PanchayatCode: "GP-042",
		StartDate:     time.Now().AddDate(0, 0, -7),
		EndDate:       future.AddDate(0, 0, 7),
		Status:        project.StatusActive,
	}}
	svc := NewAttendanceService(attRepo, &fakeWorkerRepo{roster: []worker.Worker{{ID: "w1"}}}, projRepo, &fakeUserRepo{})
	ctx := authedContext(t, "u1", "GP-042")

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      future.Format("2006-01-02"),
		Status:    attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestMarkFutureDateGateFollowsLocalCalendarDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	projRepo := &fakeProjectRepo{project: project.Project{
		ID:            "p1",
		PanchayatCode: "GP-042",
		StartDate:     time.Now().AddDate(0, 0, -7),
		EndDate:       time.Now().AddDate(0, 0, 7),
		Status:        project.StatusActive,
	}}
	svc := NewAttendanceService(attRepo, &fakeWorkerRepo{roster: []worker.Worker{{ID: "w1"}}}, projRepo, &fakeUserRepo{})
	ctx := authedContext(t, "u1", "GP-042")

	// Today by the server's local calendar is markable in every timezone,
	// including the hours where local and UTC dates disagree.
	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      time.Now().Format("2006-01-02"),
		Status:    attendance.StatusPresent,
	})
	assert.NoError(t, err)

	_, err = svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Status:    attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestEditTogglesStatusAndRecordsAudit(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1", Name: "Ramesh"}})
	ctx := authedContext(t, "u1", "GP-042")

	marked, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      "2026-03-10",
		Status:    attendance.StatusPresent,
	})
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, attendance.EditAttendanceRequest{
		ID:        marked.ID,
		NewStatus: attendance.StatusAbsent,
		Reason:    "marked by mistake, worker left site at noon",
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusAbsent, edited.Status)
	require.Len(t, attRepo.edits, 1)
	audit := attRepo.edits[0]
	assert.Equal(t, marked.ID, audit.RecordID)
	assert.Equal(t, attendance.StatusPresent, audit.PreviousStatus)
	assert.Equal(t, attendance.StatusAbsent, audit.NewStatus)
	assert.Equal(t, "marked by mistake, worker left site at noon", audit.Reason)
	assert.Equal(t, "u1", audit.EditedBy)

	// Toggling back restores the original status
	restored, err := svc.Edit(ctx, attendance.EditAttendanceRequest{
		ID:        marked.ID,
		NewStatus: attendance.StatusPresent,
		Reason:    "correction reversed after site check",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, restored.Status)
	assert.Len(t, attRepo.edits, 2)
}

func TestEditRejectsEmptyReasonBeforeRepositoryCall(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1"}})
	ctx := authedContext(t, "u1", "GP-042")

	_, err := svc.Edit(ctx, attendance.EditAttendanceRequest{
		ID:        "rec1",
		NewStatus: attendance.StatusAbsent,
		Reason:    "  ",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "reason")
	assert.Zero(t, attRepo.toggleCalls)
}

func TestEditRejectsUnchangedStatus(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1"}})
	ctx := authedContext(t, "u1", "GP-042")

	marked, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      "2026-03-10",
		Status:    attendance.StatusAbsent,
	})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, attendance.EditAttendanceRequest{
		ID:        marked.ID,
		NewStatus: attendance.StatusAbsent,
		Reason:    "no change intended",
	})
	assert.ErrorIs(t, err, attendance.ErrStatusUnchanged)
	assert.Zero(t, attRepo.toggleCalls)
}

func TestEditMissingRecord(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, []worker.Worker{{ID: "w1"}})
	ctx := authedContext(t, "u1", "GP-042")

	_, err := svc.Edit(ctx, attendance.EditAttendanceRequest{
		ID:        uuid.NewString(),
		NewStatus: attendance.StatusAbsent,
		Reason:    "typo fix",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestDailyRosterThroughService(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	roster := []worker.Worker{{ID: "w1", Name: "Ramesh"}, {ID: "w2", Name: "Sita"}}
	svc := newTestService(attRepo, roster)
	ctx := authedContext(t, "u1", "GP-042")

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		WorkerID:  "w1",
		ProjectID: "p1",
		Date:      "2026-03-10",
		Status:    attendance.StatusPresent,
	})
	require.NoError(t, err)

	resp, err := svc.DailyRoster(ctx, "p1", "2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.PresentCount)
	assert.Equal(t, 1, resp.NotMarkedCount)
	assert.Len(t, resp.Entries, 2)
}
