package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			name, job_card_id, skill, panchayat_code
		) VALUES (
			$1, $2, $3, $4
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.Name,
		w.JobCardID,
		w.Skill,
		w.PanchayatCode,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrJobCardIDExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string, panchayatCode string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, job_card_id, skill, panchayat_code, created_at, updated_at
		FROM workers
		WHERE id = $1 AND panchayat_code = $2
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id, panchayatCode).Scan(
		&w.ID, &w.Name, &w.JobCardID, &w.Skill, &w.PanchayatCode, &w.CreatedAt, &w.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by ID: %w", err)
	}

	return w, nil
}

// GetByIDs implements worker.WorkerRepository.
func (r *workerRepository) GetByIDs(ctx context.Context, ids []string, panchayatCode string) (map[string]worker.Worker, error) {
	details := make(map[string]worker.Worker, len(ids))
	if len(ids) == 0 {
		return details, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, job_card_id, skill, panchayat_code, created_at, updated_at
		FROM workers
		WHERE id = ANY($1) AND panchayat_code = $2
	`

	rows, err := q.Query(ctx, query, ids, panchayatCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(&w.ID, &w.Name, &w.JobCardID, &w.Skill, &w.PanchayatCode, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		details[w.ID] = w
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}

	return details, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context, filter worker.WorkerFilter, panchayatCode string) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "panchayat_code = $1"
	args := []interface{}{panchayatCode}
	argIdx := 2

	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Skill != nil && *filter.Skill != "" {
		baseWhere += fmt.Sprintf(" AND skill ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Skill+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM workers WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, name, job_card_id, skill, panchayat_code, created_at, updated_at
		FROM workers
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(&w.ID, &w.Name, &w.JobCardID, &w.Skill, &w.PanchayatCode, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read workers: %w", err)
	}

	return workers, total, nil
}

// ListAssigned implements worker.WorkerRepository. A worker is on a
// project's active roster only when onDate falls within the project window.
func (r *workerRepository) ListAssigned(ctx context.Context, projectID string, onDate time.Time, panchayatCode string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.name, w.job_card_id, w.skill, w.panchayat_code, w.created_at, w.updated_at
		FROM workers w
		INNER JOIN project_workers pw ON pw.worker_id = w.id
		INNER JOIN projects p ON p.id = pw.project_id
		WHERE pw.project_id = $1
		  AND w.panchayat_code = $2
		  AND p.start_date <= $3
		  AND p.end_date >= $3
		ORDER BY w.name ASC
	`

	rows, err := q.Query(ctx, query, projectID, panchayatCode, onDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query project roster: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(&w.ID, &w.Name, &w.JobCardID, &w.Skill, &w.PanchayatCode, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project roster: %w", err)
	}

	return workers, nil
}

// Assign implements worker.WorkerRepository.
func (r *workerRepository) Assign(ctx context.Context, projectID string, workerID string, panchayatCode string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_workers (project_id, worker_id)
		SELECT p.id, w.id
		FROM projects p, workers w
		WHERE p.id = $1 AND p.panchayat_code = $3
		  AND w.id = $2 AND w.panchayat_code = $3
	`

	tag, err := q.Exec(ctx, query, projectID, workerID, panchayatCode)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.ErrAlreadyAssigned
		}
		return fmt.Errorf("failed to assign worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Unassign implements worker.WorkerRepository.
func (r *workerRepository) Unassign(ctx context.Context, projectID string, workerID string, panchayatCode string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM project_workers pw
		USING workers w
		WHERE pw.project_id = $1
		  AND pw.worker_id = $2
		  AND w.id = pw.worker_id
		  AND w.panchayat_code = $3
	`

	tag, err := q.Exec(ctx, query, projectID, workerID, panchayatCode)
	if err != nil {
		return fmt.Errorf("failed to unassign worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotAssigned
	}

	return nil
}
