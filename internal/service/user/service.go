package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepo,
	}
}

// Me implements user.UserService. The profile is always re-read from the
// store, claims only identify the row.
func (s *UserServiceImpl) Me(ctx context.Context) (user.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.ProfileResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfile(u), nil
}
