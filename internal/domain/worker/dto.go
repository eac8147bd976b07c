package worker

import (
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type RegisterWorkerRequest struct {
	Name      string  `json:"name"`
	JobCardID *string `json:"job_card_id,omitempty"`
	Skill     *string `json:"skill,omitempty"`
}

func (r *RegisterWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.JobCardID != nil && !validator.IsValidJobCardID(*r.JobCardID) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_card_id",
			Message: "job_card_id must look like UP-05-001-002/123",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	JobCardID string `json:"job_card_id"`
	Skill     string `json:"skill"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type WorkerFilter struct {
	// Search & Filter
	Name  *string `json:"name,omitempty"`
	Skill *string `json:"skill,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *WorkerFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignWorkersRequest struct {
	ProjectID string   `json:"-"`
	WorkerIDs []string `json:"worker_ids"`
}

func (r *AssignWorkersRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if len(r.WorkerIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_ids",
			Message: "at least one worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize maps a Worker entity to its response form, applying the
// display fallbacks in one place: a missing job card id first falls back
// to details (the global worker lookup), then to the literal "N/A".
func Normalize(w Worker, details map[string]Worker) WorkerResponse {
	jobCard := "N/A"
	if w.JobCardID != nil && *w.JobCardID != "" {
		jobCard = *w.JobCardID
	} else if d, ok := details[w.ID]; ok && d.JobCardID != nil && *d.JobCardID != "" {
		jobCard = *d.JobCardID
	}

	skill := "N/A"
	if w.Skill != nil && *w.Skill != "" {
		skill = *w.Skill
	} else if d, ok := details[w.ID]; ok && d.Skill != nil && *d.Skill != "" {
		skill = *d.Skill
	}

	return WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		JobCardID: jobCard,
		Skill:     skill,
		CreatedAt: w.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: w.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
