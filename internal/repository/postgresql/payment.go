package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/payment"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

// GenerateForRange implements payment.PaymentRepository. The insert derives
// straight from PRESENT attendance rows that have no payment yet, so a
// repeat call over the same range inserts nothing.
func (r *paymentRepository) GenerateForRange(ctx context.Context, projectID string, wage decimal.Decimal, startDate, endDate time.Time, generatedBy string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (worker_id, project_id, date, amount, status, generated_by)
		SELECT a.worker_id, a.project_id, a.date, $2, $3, $4
		FROM attendance_records a
		WHERE a.project_id = $1
		  AND a.status = $5
		  AND a.date >= $6
		  AND a.date <= $7
		  AND NOT EXISTS (
			SELECT 1 FROM payments p
			WHERE p.worker_id = a.worker_id
			  AND p.project_id = a.project_id
			  AND p.date = a.date
		  )
	`

	tag, err := q.Exec(ctx, query,
		projectID,
		wage,
		payment.StatusGenerated,
		generatedBy,
		attendance.StatusPresent,
		startDate,
		endDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to generate payments: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListByProject implements payment.PaymentRepository.
func (r *paymentRepository) ListByProject(ctx context.Context, projectID string, startDate, endDate time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.worker_id, p.project_id, p.date, p.amount, p.status, p.generated_by,
			   p.created_at,
			   w.name AS worker_name,
			   w.job_card_id
		FROM payments p
		LEFT JOIN workers w ON w.id = p.worker_id
		WHERE p.project_id = $1
		  AND p.date >= $2
		  AND p.date <= $3
		ORDER BY p.date ASC, w.name ASC
	`

	rows, err := q.Query(ctx, query, projectID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID, &p.WorkerID, &p.ProjectID, &p.Date, &p.Amount, &p.Status, &p.GeneratedBy,
			&p.CreatedAt,
			&p.WorkerName, &p.JobCardID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payments: %w", err)
	}

	return payments, nil
}
