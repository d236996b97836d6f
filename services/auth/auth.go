package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"katwate/database"
	"katwate/models"
	"katwate/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Login signs a staff member in. Only profiles with the admin role get a
// session.
func (s *DefaultAuthService) Login(ctx context.Context, email, password, clientKey string) (*models.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, utils.NewValidationError("Email and password are required")
	}
	logger := utils.GetLogger().With(zap.String("email", email))

	key := Key(email, clientKey)
	if s.Throttle != nil {
		if err := s.Throttle.Allow(ctx, key); err != nil {
			logger.Warn("Login throttled", zap.Error(err))
			return nil, err
		}
	}

	uid, err := s.Identity.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) && s.Throttle != nil {
			if rerr := s.Throttle.RecordFailure(ctx, key); rerr != nil {
				logger.Error("Failed to record login failure", zap.Error(rerr))
			}
		}
		return nil, err
	}

	profile, err := s.Profiles.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile.Role != models.RoleAdmin {
		logger.Warn("Non-admin login refused", zap.String("uid", uid), zap.String("role", profile.Role))
		return nil, ErrNotAdmin
	}

	if s.Throttle != nil {
		if err := s.Throttle.Reset(ctx, key); err != nil {
			logger.Warn("Failed to reset login throttle", zap.Error(err))
		}
	}

	token, expiresAt, err := utils.GenerateToken(uid, profile.Email, profile.Role, s.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	session := utils.AdminSession{
		UID:       uid,
		Email:     profile.Email,
		Role:      profile.Role,
		TokenHash: utils.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAdminSession(ctx, s.Cache, session, s.SessionTTL); err != nil {
		return nil, err
	}

	logger.Info("Admin signed in", zap.String("uid", uid))
	return &models.AuthResponse{
		UID:       uid,
		Token:     token,
		Name:      profile.Name,
		Email:     profile.Email,
		Role:      profile.Role,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Logout revokes the session of uid.
func (s *DefaultAuthService) Logout(ctx context.Context, uid string) error {
	if err := utils.DeleteAdminSession(ctx, s.Cache, uid); err != nil {
		return fmt.Errorf("logout %s: %w", uid, err)
	}
	return nil
}

func (s *DefaultAuthService) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return utils.NewValidationError("Please enter your email address")
	}
	return s.Identity.SendPasswordReset(ctx, email)
}

func (s *DefaultAuthService) AdminData(ctx context.Context, uid string) (*models.StaffProfile, error) {
	profile, err := s.Profiles.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// ValidateSession accepts a token only while its session is still cached and
// was issued by the latest sign-in.
func (s *DefaultAuthService) ValidateSession(ctx context.Context, token string) (*utils.AdminSession, error) {
	uid, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	session, err := utils.GetAdminSession(ctx, s.Cache, uid)
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", uid, err)
	}
	if session.TokenHash != utils.HashToken(token) {
		return nil, ErrSessionInvalid
	}
	return session, nil
}
