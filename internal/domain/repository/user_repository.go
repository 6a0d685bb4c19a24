package repository

import (
	"context"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP). La clave natural es el username.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// List ordena por created_at ASC.
	List(ctx context.Context, page Page) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, user *entity.User) error
}
