package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrWorkerNotAssigned = errors.New("worker is not assigned to this project")
	ErrAlreadyAssigned   = errors.New("worker is already assigned to this project")
	ErrJobCardIDExists   = errors.New("job card id already registered")
)
