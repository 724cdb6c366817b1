package legalparam

import (
	"context"

	"cortesec-admin/internal/shared/backend"
)

const legalParametersPath = "/api/nomina/parametros-legales/"

//go:generate mockgen -source=legalparam_repo.go -destination=mock/legalparam_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]LegalParameter, error)
	FindByID(ctx context.Context, id string) (LegalParameter, error)
	Create(ctx context.Context, body any) (LegalParameter, error)
	Update(ctx context.Context, id string, body any) (LegalParameter, error)
	SetActive(ctx context.Context, id string, active bool) (LegalParameter, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	params *backend.Resource[LegalParameter]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{params: backend.NewResource[LegalParameter](client, legalParametersPath)}
}

func (r *repository) FindAll(ctx context.Context) ([]LegalParameter, error) {
	return r.params.List(ctx, nil)
}

func (r *repository) FindByID(ctx context.Context, id string) (LegalParameter, error) {
	return r.params.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, body any) (LegalParameter, error) {
	return r.params.Create(ctx, body)
}

func (r *repository) Update(ctx context.Context, id string, body any) (LegalParameter, error) {
	return r.params.Update(ctx, id, body)
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (LegalParameter, error) {
	return r.params.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.params.Delete(ctx, id)
}
