package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (
			name, location, panchayat_code, start_date, end_date, status, wage_per_worker
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Name,
		p.Location,
		p.PanchayatCode,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.WagePerWorker,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string, panchayatCode string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, panchayat_code, start_date, end_date, status, wage_per_worker,
			   created_at, updated_at
		FROM projects
		WHERE id = $1 AND panchayat_code = $2
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id, panchayatCode).Scan(
		&p.ID, &p.Name, &p.Location, &p.PanchayatCode, &p.StartDate, &p.EndDate, &p.Status,
		&p.WagePerWorker, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context, filter project.ProjectFilter, panchayatCode string) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "panchayat_code = $1"
	args := []interface{}{panchayatCode}
	argIdx := 2

	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.ActiveOn != nil && *filter.ActiveOn != "" {
		baseWhere += fmt.Sprintf(" AND start_date <= $%d AND end_date >= $%d", argIdx, argIdx)
		args = append(args, *filter.ActiveOn)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM projects WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, name, location, panchayat_code, start_date, end_date, status, wage_per_worker,
			   created_at, updated_at
		FROM projects
		WHERE %s
		ORDER BY start_date DESC
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
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID, &p.Name, &p.Location, &p.PanchayatCode, &p.StartDate, &p.EndDate, &p.Status,
			&p.WagePerWorker, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, total, nil
}

// ActivatePending implements project.ProjectRepository.
func (r *projectRepository) ActivatePending(ctx context.Context, asOf time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND start_date <= $3
		  AND end_date >= $3
	`, project.StatusActive, project.StatusPending, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to activate pending projects: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CompleteExpired implements project.ProjectRepository.
func (r *projectRepository) CompleteExpired(ctx context.Context, asOf time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND end_date < $3
	`, project.StatusCompleted, project.StatusActive, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to complete expired projects: %w", err)
	}

	return tag.RowsAffected(), nil
}
