package domain

import "errors"

var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// Identity is the authenticated principal derived from a verified access
// token. It is attached to the request context by the auth middleware.
type Identity struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
