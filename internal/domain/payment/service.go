package payment

import (
	"context"
)

// PaymentService defines business logic for wage payment operations
type PaymentService interface {
	// Project estimates the payable amount for a project over a range:
	// wage_per_worker multiplied by the PRESENT day count. Read-only.
	Project(ctx context.Context, req ProjectionRequest) (ProjectionResponse, error)

	// Generate creates payment records for not-yet-paid PRESENT days in
	// the range. Idempotent: a second call for the same range creates
	// nothing and reports a zero count.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// List retrieves generated payments for a project over a range
	List(ctx context.Context, req ProjectionRequest) ([]PaymentResponse, error)
}
