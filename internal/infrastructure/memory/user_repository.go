package memory

import (
	"context"
	"sort"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria, por username.
type UserRepo struct {
	h handle
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	defer r.h.lock()()
	if _, ok := r.h.s.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.h.s.users[u.Username] = *u
	return nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	defer r.h.lock()()
	u, ok := r.h.s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	defer r.h.lock()()
	out := make([]*entity.User, 0, len(r.h.s.users))
	for _, u := range r.h.s.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Username < out[j].Username
	})
	return paginate(out, page), nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	defer r.h.lock()()
	return len(r.h.s.users), nil
}

func (r *UserRepo) Save(ctx context.Context, u *entity.User) error {
	defer r.h.lock()()
	r.h.s.users[u.Username] = *u
	return nil
}
