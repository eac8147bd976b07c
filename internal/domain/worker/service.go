package worker

import (
	"context"
)

// WorkerService defines business logic for the worker roster
type WorkerService interface {
	// Register adds a worker under the caller's panchayat
	Register(ctx context.Context, req RegisterWorkerRequest) (WorkerResponse, error)

	// GetByID retrieves a single worker
	GetByID(ctx context.Context, id string) (WorkerResponse, error)

	// List retrieves workers with filters and pagination
	List(ctx context.Context, filter WorkerFilter) ([]WorkerResponse, int64, error)

	// ListAssigned retrieves a project's roster active on a date
	ListAssigned(ctx context.Context, projectID string, date string) ([]WorkerResponse, error)

	// Assign adds workers to a project roster
	Assign(ctx context.Context, req AssignWorkersRequest) error

	// Unassign removes a worker from a project roster
	Unassign(ctx context.Context, projectID, workerID string) error
}
