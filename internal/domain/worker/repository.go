package worker

import (
	"context"
	"time"
)

// WorkerRepository defines data access methods for the worker roster.
// All methods include panchayatCode to prevent cross-panchayat data access.
type WorkerRepository interface {
	// Create registers a new worker under a job card
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves a worker with panchayat isolation
	GetByID(ctx context.Context, id string, panchayatCode string) (Worker, error)

	// GetByIDs retrieves the given workers keyed by id, for enrichment lookups
	GetByIDs(ctx context.Context, ids []string, panchayatCode string) (map[string]Worker, error)

	// List retrieves workers with filters and pagination
	List(ctx context.Context, filter WorkerFilter, panchayatCode string) ([]Worker, int64, error)

	// ListAssigned retrieves the roster assigned to a project whose active
	// window contains onDate
	ListAssigned(ctx context.Context, projectID string, onDate time.Time, panchayatCode string) ([]Worker, error)

	// Assign adds a worker to a project roster
	Assign(ctx context.Context, projectID string, workerID string, panchayatCode string) error

	// Unassign removes a worker from a project roster
	Unassign(ctx context.Context, projectID string, workerID string, panchayatCode string) error
}
