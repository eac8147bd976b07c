package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRepository defines data access methods for wage payments.
type PaymentRepository interface {
	// GenerateForRange inserts one payment per PRESENT attendance day in
	// the range that has no payment yet, at the given wage. Returns how
	// many records were created; calling it again for the same range
	// creates nothing.
	GenerateForRange(ctx context.Context, projectID string, wage decimal.Decimal, startDate, endDate time.Time, generatedBy string) (int64, error)

	// ListByProject retrieves enriched payments for a project in a range
	ListByProject(ctx context.Context, projectID string, startDate, endDate time.Time) ([]Payment, error)
}
