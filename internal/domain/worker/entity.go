package worker

import (
	"time"
)

type Worker struct {
	ID            string
	Name          string
	JobCardID     *string
	Skill         *string
	PanchayatCode string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
