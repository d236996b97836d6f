package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// FirebaseIdentity signs staff in through the Identity Toolkit REST API and
// manages accounts with the Firebase Admin SDK.
type FirebaseIdentity struct {
	toolkit *identitytoolkit.Service
	admin   *auth.Client
}

// NewFirebaseIdentity builds the provider. apiKey is the project's web API key.
func NewFirebaseIdentity(ctx context.Context, apiKey string, admin *auth.Client) (*FirebaseIdentity, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identity toolkit client: %w", err)
	}
	return &FirebaseIdentity{toolkit: svc, admin: admin}, nil
}

func (f *FirebaseIdentity) SignIn(ctx context.Context, email, password string) (string, error) {
	resp, err := f.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		if isCredentialError(err) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify password: %w", err)
	}
	return resp.LocalId, nil
}

func (f *FirebaseIdentity) SendPasswordReset(ctx context.Context, email string) error {
	_, err := f.toolkit.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("send password reset to %s: %w", email, err)
	}
	return nil
}

func (f *FirebaseIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	user, err := f.admin.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrEmailExists
		}
		return "", fmt.Errorf("create user %s: %w", email, err)
	}
	return user.UID, nil
}

func (f *FirebaseIdentity) DeleteUser(ctx context.Context, uid string) error {
	if err := f.admin.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("delete user %s: %w", uid, err)
	}
	return nil
}

var credentialErrors = []string{"INVALID_PASSWORD", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL"}

func isCredentialError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range credentialErrors {
		if strings.Contains(apiErr.Message, code) {
			return true
		}
	}
	return false
}
