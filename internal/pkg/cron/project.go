package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
)

// ProjectJobs rolls project status along the active window: pending
// projects whose window has opened become active, active projects whose
// window has closed become completed.
type ProjectJobs struct {
	projectRepo project.ProjectRepository
}

func NewProjectJobs(projectRepo project.ProjectRepository) *ProjectJobs {
	return &ProjectJobs{projectRepo: projectRepo}
}

func (j *ProjectJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("roll_project_status", 1*time.Hour, j.RollProjectStatus)
}

func (j *ProjectJobs) RollProjectStatus(ctx context.Context) error {
	now := time.Now()

	activated, err := j.projectRepo.ActivatePending(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to activate pending projects: %w", err)
	}

	completed, err := j.projectRepo.CompleteExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to complete expired projects: %w", err)
	}

	if activated > 0 || completed > 0 {
		slog.Info("Cron: project status rolled", "activated", activated, "completed", completed)
	}
	return nil
}
