package roletype

import (
	"context"

	"cortesec-admin/internal/shared/backend"
)

const roleTypesPath = "/api/roles/tipos-rol/"

//go:generate mockgen -source=roletype_repo.go -destination=mock/roletype_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]RoleType, error)
	FindByID(ctx context.Context, id string) (RoleType, error)
	Create(ctx context.Context, req RoleTypeRequest) (RoleType, error)
	Update(ctx context.Context, id string, req RoleTypeRequest) (RoleType, error)
	SetActive(ctx context.Context, id string, active bool) (RoleType, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	types *backend.Resource[RoleType]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{types: backend.NewResource[RoleType](client, roleTypesPath)}
}

func (r *repository) FindAll(ctx context.Context) ([]RoleType, error) {
	return r.types.List(ctx, nil)
}

func (r *repository) FindByID(ctx context.Context, id string) (RoleType, error) {
	return r.types.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req RoleTypeRequest) (RoleType, error) {
	return r.types.Create(ctx, req)
}

func (r *repository) Update(ctx context.Context, id string, req RoleTypeRequest) (RoleType, error) {
	return r.types.Update(ctx, id, req)
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (RoleType, error) {
	return r.types.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.types.Delete(ctx, id)
}
