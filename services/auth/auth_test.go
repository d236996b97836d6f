package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"katwate/database"
	"katwate/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	passwords map[string]string
	uids      map[string]string
	resets    []string
}

func (f *fakeIdentity) SignIn(_ context.Context, email, password string) (string, error) {
	if pw, ok := f.passwords[email]; !ok || pw != password {
		return "", ErrInvalidCredentials
	}
	return f.uids[email], nil
}

func (f *fakeIdentity) SendPasswordReset(_ context.Context, email string) error {
	f.resets = append(f.resets, email)
	return nil
}

func (f *fakeIdentity) CreateUser(context.Context, string, string, string) (string, error) {
	return "", fmt.Errorf("not supported")
}

func (f *fakeIdentity) DeleteUser(context.Context, string) error { return nil }

type fakeProfiles map[string]models.StaffProfile

func (f fakeProfiles) GetByUID(_ context.Context, uid string) (*models.StaffProfile, error) {
	p, ok := f[uid]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", uid, database.ErrNotFound)
	}
	return &p, nil
}

func (f fakeProfiles) GetByEmail(_ context.Context, email string) (*models.StaffProfile, error) {
	for _, p := range f {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f fakeProfiles) Save(_ context.Context, p *models.StaffProfile) error {
	f[p.UID] = *p
	return nil
}

type fixture struct {
	svc      *DefaultAuthService
	mr       *miniredis.Miniredis
	identity *fakeIdentity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	identity := &fakeIdentity{
		passwords: map[string]string{
			"owner@katwate.in": "s3cret!",
			"desk@katwate.in":  "frontdesk",
			"ghost@katwate.in": "boo",
		},
		uids: map[string]string{
			"owner@katwate.in": "uid-owner",
			"desk@katwate.in":  "uid-desk",
			"ghost@katwate.in": "uid-ghost",
		},
	}
	profiles := fakeProfiles{
		"uid-owner": {UID: "uid-owner", Email: "owner@katwate.in", Name: "Owner", Role: models.RoleAdmin},
		"uid-desk":  {UID: "uid-desk", Email: "desk@katwate.in", Name: "Desk", Role: "receptionist"},
	}
	throttle := NewLoginThrottle(client, 3, 5*time.Minute)
	return &fixture{
		svc:      NewAuthService(identity, profiles, client, throttle, time.Hour),
		mr:       mr,
		identity: identity,
	}
}

func TestLoginIssuesSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "uid-owner", resp.UID)
	assert.Equal(t, "Owner", resp.Name)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, f.mr.Exists("adminSession:uid-owner"))

	session, err := f.svc.ValidateSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role)

	require.NoError(t, f.svc.Logout(ctx, "uid-owner"))
	_, err = f.svc.ValidateSession(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestLoginErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, "owner@katwate.in", "wrong", "a")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, "desk@katwate.in", "frontdesk", "b")
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = f.svc.Login(ctx, "ghost@katwate.in", "boo", "c")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = f.svc.Login(ctx, "", "", "d")
	require.Error(t, err)
	assert.Equal(t, "Email and password are required", err.Error())
}

func TestLoginDebounce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, "owner@katwate.in", "wrong", "a")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "a")
	assert.ErrorIs(t, err, ErrLoginInProgress)

	f.mr.FastForward(2 * time.Second)
	_, err = f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "a")
	assert.NoError(t, err)
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Login(ctx, "owner@katwate.in", "wrong", "a")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		f.mr.FastForward(2 * time.Second)
	}

	_, err := f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "a")
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// other clients are unaffected
	_, err = f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "b")
	assert.NoError(t, err)

	// failures age out of the window
	f.mr.FastForward(2 * time.Second)
	f.svc.Throttle.Now = func() time.Time { return time.Now().Add(6 * time.Minute) }
	_, err = f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "a")
	assert.NoError(t, err)
}

func TestNewLoginReplacesPreviousSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "a")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	second, err := f.svc.Login(ctx, "owner@katwate.in", "s3cret!", "b")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = f.svc.ValidateSession(ctx, first.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
	_, err = f.svc.ValidateSession(ctx, second.Token)
	assert.NoError(t, err)
}

func TestValidateSessionRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ValidateSession(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestResetPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Error(t, f.svc.ResetPassword(ctx, "  "))
	require.NoError(t, f.svc.ResetPassword(ctx, "owner@katwate.in"))
	assert.Equal(t, []string{"owner@katwate.in"}, f.identity.resets)
}

func TestAdminData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.AdminData(ctx, "uid-owner")
	require.NoError(t, err)
	assert.Equal(t, "Owner", p.Name)

	_, err = f.svc.AdminData(ctx, "uid-nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
