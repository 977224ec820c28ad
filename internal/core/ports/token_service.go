package ports

import "github.com/questlog/questlog/internal/core/domain"

// TokenPair is the result of issuing tokens for a user.
type TokenPair struct {
	AccessToken string
	// RefreshToken is a high-entropy opaque string. It is recorded against
	// the user and returned to the client, but never redeemed here.
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int
}

// TokenService issues and verifies signed, time-limited access tokens.
// Verify is the sole source of truth for token validity; any client-side
// expiry bookkeeping is advisory only.
type TokenService interface {
	Issue(user *domain.User) (*TokenPair, error)
	Verify(token string) (*domain.Identity, error)
}
