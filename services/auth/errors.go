package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrNotAdmin           = errors.New("access denied: not an admin")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrLoginInProgress    = errors.New("login attempt already in progress")
	ErrSessionInvalid     = errors.New("session expired or invalid")
	ErrEmailExists        = errors.New("a user with this email already exists")
)
