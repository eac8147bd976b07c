package attendance

import "errors"

// Attendance domain errors
var (
	// Marking errors
	ErrAlreadyMarked   = errors.New("attendance already marked for this worker, project and date")
	ErrFutureDate      = errors.New("attendance cannot be marked for a future date")
	ErrInvalidStatus   = errors.New("status must be PRESENT or ABSENT")
	ErrWorkerOffRoster = errors.New("worker is not on the project roster for this date")

	// Edit errors
	ErrReasonRequired  = errors.New("an edit reason is required")
	ErrStatusUnchanged = errors.New("new status must be the opposite of the current status")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
