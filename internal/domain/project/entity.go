package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project status values
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type Project struct {
	ID            string
	Name          string
	Location      string
	PanchayatCode string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	WagePerWorker decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActiveOn reports whether date falls within the project's
// [start_date, end_date] window. Dates are compared at day granularity.
func (p Project) IsActiveOn(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	start := p.StartDate.Truncate(24 * time.Hour)
	end := p.EndDate.Truncate(24 * time.Hour)
	return !d.Before(start) && !d.After(end)
}
