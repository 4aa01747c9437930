package service

import (
	"context"
	"testing"

	"orionpos/internal/apierror"
	"orionpos/internal/config"
	"orionpos/internal/dto"
	"orionpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*stubUserRepo, AuthService) {
	users := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
		AdminUsername:      "admin",
		AdminPassword:      "admin_26",
	}
	return users, NewAuthService(users, cfg)
}

func seedUser(t *testing.T, users *stubUserRepo, username, password, role string, isDefault bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsDefault:    isDefault,
	}
	users.users[u.ID] = u
	return u
}

func TestLogin(t *testing.T) {
	users, svc := newAuthFixture()
	seedUser(t, users, "maria", "s3cret99", model.RoleCashier, false)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "s3cret99"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "maria", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	users, svc := newAuthFixture()
	seedUser(t, users, "maria", "s3cret99", model.RoleCashier, false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindUnauthorized))

	// Unknown user yields the same error, no username probing.
	_, err2 := svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "wrong"})
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRefresh(t *testing.T) {
	users, svc := newAuthFixture()
	seedUser(t, users, "maria", "s3cret99", model.RoleCashier, false)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "s3cret99"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "maria", refreshed.User.Username)
}

func TestRefreshGarbageToken(t *testing.T) {
	_, svc := newAuthFixture()
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindUnauthorized))
}

func TestRefreshDeletedUser(t *testing.T) {
	users, svc := newAuthFixture()
	u := seedUser(t, users, "gone", "s3cret99", model.RoleCashier, false)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "gone", Password: "s3cret99"})
	require.NoError(t, err)

	delete(users.users, u.ID)

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindUnauthorized))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	users, svc := newAuthFixture()
	seedUser(t, users, "maria", "s3cret99", model.RoleCashier, false)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "maria", Password: "another1", Role: model.RoleCashier,
	})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindConflict))
}

func TestDefaultAdminProtections(t *testing.T) {
	users, svc := newAuthFixture()
	admin := seedUser(t, users, "admin", "admin_26", model.RoleAdmin, true)
	ctx := context.Background()

	err := svc.DeleteUser(ctx, admin.ID)
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindForbidden))

	_, err = svc.UpdateUser(ctx, admin.ID, dto.UpdateUserRequest{Username: "root"})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindForbidden))

	_, err = svc.UpdateUser(ctx, admin.ID, dto.UpdateUserRequest{Role: model.RoleCashier})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindForbidden))

	// Password changes stay allowed.
	_, err = svc.UpdateUser(ctx, admin.ID, dto.UpdateUserRequest{Password: "newpass99"})
	require.NoError(t, err)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	users, svc := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	require.Len(t, users.users, 1)
	for _, u := range users.users {
		assert.Equal(t, "admin", u.Username)
		assert.Equal(t, model.RoleAdmin, u.Role)
		assert.True(t, u.IsDefault)
	}

	// Idempotent: a populated table is left alone.
	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	assert.Len(t, users.users, 1)
}
