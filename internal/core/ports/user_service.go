package ports

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// UpdateProfileInput carries the optional profile changes. An empty field
// means "leave unchanged".
type UpdateProfileInput struct {
	Username string
	Email    string
	Password string
}

type UserService interface {
	Get(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, input UpdateProfileInput) error
}
