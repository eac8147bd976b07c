package user

import (
	"context"
)

// UserService defines business logic for portal user profiles
type UserService interface {
	// Me retrieves the authenticated caller's own profile
	Me(ctx context.Context) (ProfileResponse, error)
}
