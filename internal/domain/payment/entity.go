package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses
const (
	StatusGenerated = "generated"
	StatusPaid      = "paid"
)

// Payment is one day's wage owed to one worker on one project, generated
// from a PRESENT attendance record.
type Payment struct {
	ID          string
	WorkerID    string
	ProjectID   string
	Date        time.Time
	Amount      decimal.Decimal
	Status      string
	GeneratedBy string
	CreatedAt   time.Time

	// DTO
	WorkerName *string
	JobCardID  *string
}
