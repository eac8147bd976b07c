package project

import (
	"github.com/shopspring/decimal"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
)

// ========================================
// PROJECT DTOs
// ========================================

type CreateProjectRequest struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date"` // YYYY-MM-DD
	EndDate       string `json:"end_date"`   // YYYY-MM-DD
	WagePerWorker string `json:"wage_per_worker"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	_, _, rangeErrs := validator.ValidateDateRange(r.StartDate, r.EndDate)
	errs = append(errs, rangeErrs...)

	wage, err := decimal.NewFromString(r.WagePerWorker)
	if err != nil || wage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_per_worker",
			Message: "wage_per_worker must be a non-negative amount",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Status        string `json:"status"`
	WagePerWorker string `json:"wage_per_worker"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type ProjectFilter struct {
	// Search & Filter
	Name     *string `json:"name,omitempty"`
	Status   *string `json:"status,omitempty"`
	ActiveOn *string `json:"active_on,omitempty"` // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ProjectFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{StatusPending, StatusActive, StatusCompleted}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, active, completed",
		})
	}

	if f.ActiveOn != nil {
		if _, ok := validator.IsValidDate(*f.ActiveOn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "active_on",
				Message: "active_on must be in YYYY-MM-DD format",
			})
		}
	}

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

// ToResponse maps a Project entity to its response form.
func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.Location,
		StartDate:     p.StartDate.Format("2006-01-02"),
		EndDate:       p.EndDate.Format("2006-01-02"),
		Status:        p.Status,
		WagePerWorker: p.WagePerWorker.StringFixed(2),
		CreatedAt:     p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
