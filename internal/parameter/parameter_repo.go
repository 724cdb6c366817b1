package parameter

import (
	"context"

	"cortesec-admin/internal/shared/backend"
)

const parametersPath = "/api/configuracion/parametros/"

//go:generate mockgen -source=parameter_repo.go -destination=mock/parameter_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Parameter, error)
	FindByID(ctx context.Context, id string) (Parameter, error)
	Create(ctx context.Context, req ParameterRequest) (Parameter, error)
	Update(ctx context.Context, id string, req ParameterRequest) (Parameter, error)
	SetValue(ctx context.Context, id, valor string) (Parameter, error)
	SetActive(ctx context.Context, id string, active bool) (Parameter, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	params *backend.Resource[Parameter]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{params: backend.NewResource[Parameter](client, parametersPath)}
}

func (r *repository) FindAll(ctx context.Context) ([]Parameter, error) {
	return r.params.List(ctx, nil)
}

func (r *repository) FindByID(ctx context.Context, id string) (Parameter, error) {
	return r.params.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req ParameterRequest) (Parameter, error) {
	return r.params.Create(ctx, req)
}

func (r *repository) Update(ctx context.Context, id string, req ParameterRequest) (Parameter, error) {
	return r.params.Update(ctx, id, req)
}

func (r *repository) SetValue(ctx context.Context, id, valor string) (Parameter, error) {
	return r.params.Patch(ctx, id, ValueRequest{Valor: valor})
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (Parameter, error) {
	return r.params.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.params.Delete(ctx, id)
}
