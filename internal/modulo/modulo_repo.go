package modulo

import (
	"context"

	"cortesec-admin/internal/shared/backend"
)

const modulesPath = "/api/configuracion/modulos/"

//go:generate mockgen -source=modulo_repo.go -destination=mock/modulo_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Module, error)
	FindByID(ctx context.Context, id string) (Module, error)
	Create(ctx context.Context, req ModuleRequest) (Module, error)
	Update(ctx context.Context, id string, req ModuleRequest) (Module, error)
	SetActive(ctx context.Context, id string, active bool) (Module, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	modules *backend.Resource[Module]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{modules: backend.NewResource[Module](client, modulesPath)}
}

func (r *repository) FindAll(ctx context.Context) ([]Module, error) {
	return r.modules.List(ctx, nil)
}

func (r *repository) FindByID(ctx context.Context, id string) (Module, error) {
	return r.modules.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req ModuleRequest) (Module, error) {
	return r.modules.Create(ctx, req)
}

func (r *repository) Update(ctx context.Context, id string, req ModuleRequest) (Module, error) {
	return r.modules.Update(ctx, id, req)
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (Module, error) {
	return r.modules.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.modules.Delete(ctx, id)
}
