package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/auth"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/memory"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/jwt"
)

const secret = "secreto-de-prueba"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(time.UTC)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(),
		entity.NewUser("thu", "Thu", string(hash), entity.RoleAdmin, time.Now())))
	uc := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, nil)
	return uc, store
}

func TestLogin_TokenConUsuarioYRol(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "thu", Password: "clave-123"})
	require.NoError(t, err)
	assert.Equal(t, "thu", out.User.Username)

	username, role, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "thu", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_Errores(t *testing.T) {
	uc, store := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "thu", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "clave-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	u, _ := store.Users().FindByUsername(ctx, "thu")
	u.IsActive = false
	require.NoError(t, store.Users().Save(ctx, u))
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "thu", Password: "clave-123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestChangePassword(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	err := uc.ChangePassword(ctx, "thu", dto.ChangePasswordRequest{OldPassword: "otra", NewPassword: "nueva-123"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	err = uc.ChangePassword(ctx, "nadie", dto.ChangePasswordRequest{OldPassword: "clave-123", NewPassword: "nueva-123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, uc.ChangePassword(ctx, "thu", dto.ChangePasswordRequest{OldPassword: "clave-123", NewPassword: "nueva-123"}))
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "thu", Password: "nueva-123"})
	assert.NoError(t, err)
}

func TestProfile(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.Profile(context.Background(), "thu")
	require.NoError(t, err)
	assert.Equal(t, "Thu", out.Name)

	_, err = uc.Profile(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
