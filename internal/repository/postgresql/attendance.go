package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelectColumns = `
	a.id, a.worker_id, a.project_id, a.date, a.status, a.marked_by,
	a.created_at, a.updated_at,
	w.name AS worker_name,
	w.job_card_id,
	w.skill,
	u.name AS supervisor_name
`

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			worker_id, project_id, date, status, marked_by
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.WorkerID,
		record.ProjectID,
		record.Date,
		record.Status,
		record.MarkedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyMarked
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		LEFT JOIN workers w ON w.id = a.worker_id
		LEFT JOIN users u ON u.id = a.marked_by
		WHERE a.id = $1
	`, attendanceSelectColumns)

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.WorkerID, &rec.ProjectID, &rec.Date, &rec.Status, &rec.MarkedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.WorkerName, &rec.JobCardID, &rec.Skill, &rec.SupervisorName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// Exists implements attendance.AttendanceRepository.
func (a *attendanceRepository) Exists(ctx context.Context, workerID, projectID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE worker_id = $1 AND project_id = $2 AND date = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, workerID, projectID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, projectID string, startDate, endDate time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		LEFT JOIN workers w ON w.id = a.worker_id
		LEFT JOIN users u ON u.id = a.marked_by
		WHERE a.project_id = $1
		  AND a.date >= $2
		  AND a.date <= $3
		ORDER BY a.date ASC, a.created_at ASC
	`, attendanceSelectColumns)

	rows, err := q.Query(ctx, query, projectID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForDate(ctx context.Context, projectID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		LEFT JOIN workers w ON w.id = a.worker_id
		LEFT JOIN users u ON u.id = a.marked_by
		WHERE a.project_id = $1
		  AND a.date = $2
		ORDER BY a.created_at ASC
	`, attendanceSelectColumns)

	rows, err := q.Query(ctx, query, projectID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ToggleStatus implements attendance.AttendanceRepository. The status flip
// and its audit row commit together or not at all.
func (a *attendanceRepository) ToggleStatus(ctx context.Context, recordID string, newStatus string, edit attendance.Edit) error {
	return WithTransaction(ctx, a.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, a.db)

		tag, err := q.Exec(ctx, `
			UPDATE attendance_records
			SET status = $2, updated_at = NOW()
			WHERE id = $1
		`, recordID, newStatus)
		if err != nil {
			return fmt.Errorf("failed to update attendance status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return attendance.ErrRecordNotFound
		}

		_, err = q.Exec(ctx, `
			INSERT INTO attendance_edits (
				id, record_id, previous_status, new_status, reason, edited_by, edited_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)
		`, edit.ID, edit.RecordID, edit.PreviousStatus, edit.NewStatus, edit.Reason, edit.EditedBy, edit.EditedAt)
		if err != nil {
			return fmt.Errorf("failed to insert attendance edit: %w", err)
		}

		return nil
	})
}

// CountPresent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountPresent(ctx context.Context, projectID string, startDate, endDate time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE project_id = $1
		  AND status = $2
		  AND date >= $3
		  AND date <= $4
	`

	var count int64
	if err := q.QueryRow(ctx, query, projectID, attendance.StatusPresent, startDate, endDate).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present records: %w", err)
	}

	return count, nil
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.ProjectID, &rec.Date, &rec.Status, &rec.MarkedBy,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.WorkerName, &rec.JobCardID, &rec.Skill, &rec.SupervisorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}
	return records, nil
}
