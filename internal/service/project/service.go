package project

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{
		ProjectRepository: projectRepo,
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

// Create implements project.ProjectService. A new project starts pending
// unless today already falls inside its window.
func (p *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	wage, _ := decimal.NewFromString(req.WagePerWorker)

	entity := project.Project{
		Name:          req.Name,
		Location:      req.Location,
		PanchayatCode: panchayatCode,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        project.StatusPending,
		WagePerWorker: wage,
	}
	if entity.IsActiveOn(time.Now()) {
		entity.Status = project.StatusActive
	}

	created, err := p.ProjectRepository.Create(ctx, entity)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	fetched, err := p.ProjectRepository.GetByID(ctx, created.ID, panchayatCode)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to get created project: %w", err)
	}

	return project.ToResponse(fetched), nil
}

// GetByID implements project.ProjectService.
func (p *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	proj, err := p.ProjectRepository.GetByID(ctx, id, panchayatCode)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(proj), nil
}

// List implements project.ProjectService.
func (p *ProjectServiceImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	panchayatCode, err := panchayatFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	projects, total, err := p.ProjectRepository.List(ctx, filter, panchayatCode)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, proj := range projects {
		responses = append(responses, project.ToResponse(proj))
	}
	return responses, total, nil
}
