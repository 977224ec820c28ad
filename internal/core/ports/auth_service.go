package ports

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// LoginResult carries the token pair handed to a freshly authenticated user.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds, echoed to the
	// client so it can run its advisory "is this token worth sending" check.
	ExpiresIn int
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
