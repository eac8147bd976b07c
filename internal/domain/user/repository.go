package user

import (
	"context"
)

// UserRepository defines data access methods for portal users. Accounts are
// provisioned by the portal's SSO; this service only reads them.
type UserRepository interface {
	// GetByID retrieves a user profile
	GetByID(ctx context.Context, id string) (User, error)

	// Directory resolves supervisor ids to display names for enrichment
	Directory(ctx context.Context, ids []string) (map[string]string, error)
}
