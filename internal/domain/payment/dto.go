package payment

import (
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
)

// ========================================
// PAYMENT DTOs
// ========================================

type ProjectionRequest struct {
	ProjectID string `json:"project_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *ProjectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	_, _, rangeErrs := validator.ValidateDateRange(r.StartDate, r.EndDate)
	errs = append(errs, rangeErrs...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectionResponse struct {
	ProjectID     string `json:"project_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	WagePerWorker string `json:"wage_per_worker"`
	PresentDays   int64  `json:"present_days"`
	TotalPayable  string `json:"total_payable"`
}

type GenerateRequest struct {
	ProjectID string `json:"project_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	_, _, rangeErrs := validator.ValidateDateRange(r.StartDate, r.EndDate)
	errs = append(errs, rangeErrs...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateResponse struct {
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

type PaymentResponse struct {
	ID         string `json:"id"`
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	JobCardID  string `json:"job_card_id"`
	ProjectID  string `json:"project_id"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// ToResponse maps a Payment entity to its response form, with "N/A"
// standing in for worker fields the join could not resolve.
func ToResponse(p Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:         p.ID,
		WorkerID:   p.WorkerID,
		WorkerName: "N/A",
		JobCardID:  "N/A",
		ProjectID:  p.ProjectID,
		Date:       p.Date.Format("2006-01-02"),
		Amount:     p.Amount.StringFixed(2),
		Status:     p.Status,
	}
	if p.WorkerName != nil && *p.WorkerName != "" {
		resp.WorkerName = *p.WorkerName
	}
	if p.JobCardID != nil && *p.JobCardID != "" {
		resp.JobCardID = *p.JobCardID
	}
	return resp
}
