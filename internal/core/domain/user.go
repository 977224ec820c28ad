package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")

// User is an account holder. Username uniqueness is case-insensitive.
// RefreshTokens is append-only: a token is minted at every login but there is
// no redemption endpoint, so nothing ever validates against the list.
type User struct {
	UserID        int       `json:"user_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	RefreshTokens []string  `json:"refresh_tokens"`
	CreatedDate   time.Time `json:"created_date"`
}
