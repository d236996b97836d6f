package auth

import (
	"context"
	"time"

	"katwate/database/repository"
	"katwate/models"
	"katwate/utils"

	"github.com/go-redis/redis/v8"
)

// IdentityProvider is the external account system staff sign in with.
type IdentityProvider interface {
	// SignIn checks the password and returns the account uid. Wrong
	// passwords and unknown accounts both yield ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (string, error)
	SendPasswordReset(ctx context.Context, email string) error
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

// AuthService handles staff sign-in and sessions.
type AuthService interface {
	Login(ctx context.Context, email, password, clientKey string) (*models.AuthResponse, error)
	Logout(ctx context.Context, uid string) error
	ResetPassword(ctx context.Context, email string) error
	AdminData(ctx context.Context, uid string) (*models.StaffProfile, error)
	ValidateSession(ctx context.Context, token string) (*utils.AdminSession, error)
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Identity   IdentityProvider
	Profiles   repository.ProfileRepository
	Cache      *redis.Client
	Throttle   *LoginThrottle
	SessionTTL time.Duration
}

func NewAuthService(
	identity IdentityProvider,
	profiles repository.ProfileRepository,
	cache *redis.Client,
	throttle *LoginThrottle,
	sessionTTL time.Duration,
) *DefaultAuthService {
	return &DefaultAuthService{
		Identity:   identity,
		Profiles:   profiles,
		Cache:      cache,
		Throttle:   throttle,
		SessionTTL: sessionTTL,
	}
}
