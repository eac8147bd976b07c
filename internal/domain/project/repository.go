package project

import (
	"context"
	"time"
)

// ProjectRepository defines data access methods for projects.
// All methods include panchayatCode to prevent cross-panchayat data access.
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, p Project) (Project, error)

	// GetByID retrieves a project with panchayat isolation
	GetByID(ctx context.Context, id string, panchayatCode string) (Project, error)

	// List retrieves projects with filters and pagination
	List(ctx context.Context, filter ProjectFilter, panchayatCode string) ([]Project, int64, error)

	// ActivatePending flips pending projects whose window has opened as of
	// asOf to active; returns how many changed
	ActivatePending(ctx context.Context, asOf time.Time) (int64, error)

	// CompleteExpired flips active projects whose window has closed as of
	// asOf to completed; returns how many changed
	CompleteExpired(ctx context.Context, asOf time.Time) (int64, error)
}
