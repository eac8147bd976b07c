package project

import (
	"context"
)

// ProjectService defines business logic for project operations
type ProjectService interface {
	// Create registers a new works project in the caller's panchayat
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)

	// GetByID retrieves a single project
	GetByID(ctx context.Context, id string) (ProjectResponse, error)

	// List retrieves projects with filters and pagination
	List(ctx context.Context, filter ProjectFilter) ([]ProjectResponse, int64, error)
}
