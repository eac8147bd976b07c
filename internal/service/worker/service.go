package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepo,
	}
}

func panchayatFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	panchayatCode, ok := claims["panchayat_code"].(string)
	if !ok || panchayatCode == "" {
		return "", fmt.Errorf("panchayat_code claim is missing or invalid")
	}
	return panchayatCode, nil
}

// Register implements worker.WorkerService.
func (s *WorkerServiceImpl) Register(ctx context.Context, req worker.RegisterWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		Name:          req.Name,
		JobCardID:     req.JobCardID,
		Skill:         req.Skill,
		PanchayatCode: panchayatCode,
	})
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	fetched, err := s.WorkerRepository.GetByID(ctx, created.ID, panchayatCode)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to get created worker: %w", err)
	}

	return worker.Normalize(fetched, nil), nil
}

// GetByID implements worker.WorkerService.
func (s *WorkerServiceImpl) GetByID(ctx context.Context, id string) (worker.WorkerResponse, error) {
	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, id, panchayatCode)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.Normalize(w, nil), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	workers, total, err := s.WorkerRepository.List(ctx, filter, panchayatCode)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.Normalize(w, nil))
	}
	return responses, total, nil
}

// ListAssigned implements worker.WorkerService. An empty or invalid date
// defaults to today, so the roster reflects the current window.
func (s *WorkerServiceImpl) ListAssigned(ctx context.Context, projectID string, date string) ([]worker.WorkerResponse, error) {
	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return nil, err
	}

	onDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		onDate = time.Now()
	}

	roster, err := s.WorkerRepository.ListAssigned(ctx, projectID, onDate, panchayatCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get project roster: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(roster))
	for _, w := range roster {
		responses = append(responses, worker.Normalize(w, nil))
	}
	return responses, nil
}

// Assign implements worker.WorkerService. Each worker is checked against
// the panchayat before touching the roster, so one bad id fails the batch.
func (s *WorkerServiceImpl) Assign(ctx context.Context, req worker.AssignWorkersRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return err
	}

	details, err := s.WorkerRepository.GetByIDs(ctx, req.WorkerIDs, panchayatCode)
	if err != nil {
		return fmt.Errorf("failed to get workers: %w", err)
	}

	for _, workerID := range req.WorkerIDs {
		if _, ok := details[workerID]; !ok {
			return worker.ErrWorkerNotFound
		}
	}

	for _, workerID := range req.WorkerIDs {
		if err := s.WorkerRepository.Assign(ctx, req.ProjectID, workerID, panchayatCode); err != nil {
			return fmt.Errorf("failed to assign worker %s: %w", workerID, err)
		}
	}
	return nil
}

// Unassign implements worker.WorkerService.
func (s *WorkerServiceImpl) Unassign(ctx context.Context, projectID, workerID string) error {
	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.WorkerRepository.Unassign(ctx, projectID, workerID, panchayatCode); err != nil {
		return err
	}
	return nil
}
