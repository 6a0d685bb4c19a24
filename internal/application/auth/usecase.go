package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, now func() time.Time) *AuthUseCase {
	if now == nil {
		now = time.Now
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: now}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente o contraseña errónea -> ErrUnauthorized; usuario desactivado -> ErrUserInactive.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}

// ChangePassword cambia la contraseña del usuario autenticado tras verificar la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, username string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = entity.StampTime(uc.now())
	return uc.userRepo.Save(ctx, user)
}

// Profile devuelve el usuario autenticado; ErrUserNotFound si ya no existe.
func (uc *AuthUseCase) Profile(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}
