package user

import (
	"context"
	"net/url"

	"cortesec-admin/internal/shared/backend"
)

const usersPath = "/api/usuarios/usuarios/"

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindPage(ctx context.Context, query url.Values) (backend.Page[User], error)
	FindByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	SetActive(ctx context.Context, id string, active bool) (User, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	users *backend.Resource[User]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{users: backend.NewResource[User](client, usersPath)}
}

func (r *repository) FindPage(ctx context.Context, query url.Values) (backend.Page[User], error) {
	return r.users.ListPage(ctx, query)
}

func (r *repository) FindByID(ctx context.Context, id string) (User, error) {
	return r.users.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	return r.users.Create(ctx, req)
}

func (r *repository) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	return r.users.Update(ctx, id, req)
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (User, error) {
	return r.users.Patch(ctx, id, UpdateUserStatusRequest{IsActive: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.users.Delete(ctx, id)
}
