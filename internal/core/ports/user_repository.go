package ports

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username lookups and uniqueness checks are case-insensitive.
type UserRepository interface {
	// Create appends a new user, allocating its user_id. Returns
	// domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// Update replaces the stored record, re-checking username uniqueness
	// against every other user.
	Update(ctx context.Context, user *domain.User) error
	AppendRefreshToken(ctx context.Context, userID int, token string) error
}
