package response

import (
	"errors"
	"net/http"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/payment"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrWorkerOffRoster):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrReasonRequired):
		ValidationError(w, map[string]string{"reason": err.Error()})
	case errors.Is(err, attendance.ErrStatusUnchanged):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrOutsideProjectWindow):
		BadRequest(w, err.Error(), nil)

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerNotAssigned):
		NotFound(w, "Worker is not assigned to this project")
	case errors.Is(err, worker.ErrAlreadyAssigned):
		Conflict(w, err.Error())
	case errors.Is(err, worker.ErrJobCardIDExists):
		Conflict(w, err.Error())

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment record not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
