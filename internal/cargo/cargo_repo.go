package cargo

import (
	"context"

	"cortesec-admin/internal/shared/backend"
)

const cargosPath = "/api/configuracion/cargos/"

//go:generate mockgen -source=cargo_repo.go -destination=mock/cargo_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Cargo, error)
	FindByID(ctx context.Context, id string) (Cargo, error)
	Create(ctx context.Context, req CargoRequest) (Cargo, error)
	Update(ctx context.Context, id string, req CargoRequest) (Cargo, error)
	SetActive(ctx context.Context, id string, active bool) (Cargo, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	cargos *backend.Resource[Cargo]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{cargos: backend.NewResource[Cargo](client, cargosPath)}
}

func (r *repository) FindAll(ctx context.Context) ([]Cargo, error) {
	return r.cargos.List(ctx, nil)
}

func (r *repository) FindByID(ctx context.Context, id string) (Cargo, error) {
	return r.cargos.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req CargoRequest) (Cargo, error) {
	return r.cargos.Create(ctx, req)
}

func (r *repository) Update(ctx context.Context, id string, req CargoRequest) (Cargo, error) {
	return r.cargos.Update(ctx, id, req)
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (Cargo, error) {
	return r.cargos.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.cargos.Delete(ctx, id)
}
