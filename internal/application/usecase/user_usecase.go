package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo     repository.UserRepository
	pageSize int
	now      func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, pageSize int, now func() time.Time) *UserUseCase {
	if pageSize <= 0 {
		pageSize = repository.DefaultPageSize
	}
	if now == nil {
		now = time.Now
	}
	return &UserUseCase{repo: repo, pageSize: pageSize, now: now}
}

// GetByUsername obtiene un usuario; (nil, nil) si no existe.
func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// List usuarios por fecha de creación, con el total.
func (uc *UserUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.UserResponse], error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users := []*entity.User{}
	if total > 0 {
		users, err = uc.repo.List(ctx, repository.NewPage(q.Page, uc.pageSize))
		if err != nil {
			return nil, err
		}
	}
	return &dto.ListResponse[dto.UserResponse]{Items: dto.ToUserResponses(users), Total: total}, nil
}

// Create crea un usuario normal activo. ErrDuplicate si el username ya existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.NewUser(in.Username, in.Name, string(hash), entity.RoleRegular, uc.now())
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Update cambia nombre y/o contraseña; (nil, nil) si no existe.
func (uc *UserUseCase) Update(ctx context.Context, username string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = entity.StampTime(uc.now())
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// ToggleActive fija is_active del usuario; (nil, nil) si no existe.
func (uc *UserUseCase) ToggleActive(ctx context.Context, username string, in dto.ToggleUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	user.IsActive = in.IsActive
	user.UpdatedAt = entity.StampTime(uc.now())
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// IsActive indica si el usuario existe y sigue activo.
func (uc *UserUseCase) IsActive(ctx context.Context, username string) (bool, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsActive, nil
}

// EnsureAdmin crea el administrador o, si ya existe, le restablece contraseña, rol y estado activo.
// Devuelve true si lo creó.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, username, name, password string) (bool, error) {
	if username == "" || len(password) < 6 {
		return false, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		if name == "" {
			name = username
		}
		if err := uc.repo.Create(ctx, entity.NewUser(username, name, string(hash), entity.RoleAdmin, uc.now())); err != nil {
			return false, err
		}
		return true, nil
	}
	user.PasswordHash = string(hash)
	user.Role = entity.RoleAdmin
	user.IsActive = true
	if name != "" {
		user.Name = name
	}
	user.UpdatedAt = entity.StampTime(uc.now())
	return false, uc.repo.Save(ctx, user)
}
