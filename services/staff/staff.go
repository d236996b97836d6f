package staff

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"katwate/database"
	"katwate/database/repository"
	"katwate/models"
	"katwate/services/auth"
	"katwate/utils"

	"go.uber.org/zap"
)

// Roles a staff member can be given.
var Roles = []string{models.RoleAdmin, "receptionist", "manager", "cleaner"}

const (
	tempPasswordLength  = 12
	tempPasswordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"
)

// StaffService manages staff accounts.
type StaffService interface {
	AddStaff(ctx context.Context, req models.NewStaffRequest) (*models.StaffProfile, error)
	StaffByEmail(ctx context.Context, email string) (*models.StaffProfile, error)
}

// DefaultStaffService implements StaffService.
type DefaultStaffService struct {
	Identity auth.IdentityProvider
	Profiles repository.ProfileRepository
}

func NewStaffService(identity auth.IdentityProvider, profiles repository.ProfileRepository) *DefaultStaffService {
	return &DefaultStaffService{Identity: identity, Profiles: profiles}
}

// AddStaff creates the account with a random temporary password, stores the
// profile and mails a password reset link so the new member picks their own.
func (s *DefaultStaffService) AddStaff(ctx context.Context, req models.NewStaffRequest) (*models.StaffProfile, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if email == "" || name == "" || role == "" {
		return nil, utils.NewValidationError("Email, name and role are required")
	}
	if !validRole(role) {
		return nil, utils.NewValidationError(fmt.Sprintf("Invalid role. Must be one of: %s", strings.Join(Roles, ", ")))
	}

	password, err := tempPassword(tempPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate temporary password: %w", err)
	}
	uid, err := s.Identity.CreateUser(ctx, email, password, name)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return nil, utils.NewValidationError("A user with this email already exists")
		}
		return nil, err
	}

	profile := &models.StaffProfile{UID: uid, Email: email, Name: name, Role: role}
	if err := s.Profiles.Save(ctx, profile); err != nil {
		// drop the account so the same email can be added again
		if delErr := s.Identity.DeleteUser(ctx, uid); delErr != nil {
			utils.GetLogger().Error("Failed to remove staff account after profile save failed",
				zap.String("uid", uid), zap.Error(delErr))
		}
		return nil, fmt.Errorf("save staff profile: %w", err)
	}

	if err := s.Identity.SendPasswordReset(ctx, email); err != nil {
		// the account exists; the admin can resend the link from the login page
		utils.GetLogger().Warn("Failed to send password reset to new staff member",
			zap.String("uid", uid), zap.Error(err))
	}
	utils.GetLogger().Info("Staff member added", zap.String("uid", uid), zap.String("role", role))
	return profile, nil
}

func (s *DefaultStaffService) StaffByEmail(ctx context.Context, email string) (*models.StaffProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, utils.NewValidationError("Email is required")
	}
	p, err := s.Profiles.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, auth.ErrProfileNotFound
	}
	return p, err
}

func validRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func tempPassword(n int) (string, error) {
	limit := big.NewInt(int64(len(tempPasswordCharset)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = tempPasswordCharset[idx.Int64()]
	}
	return string(b), nil
}
