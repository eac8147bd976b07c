package user

import (
	"time"
)

// Portal roles
const (
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

type User struct {
	ID            string
	Name          string
	Email         string
	Role          string
	PanchayatCode string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
