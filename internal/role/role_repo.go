package role

import (
	"context"
	"encoding/json"
	"net/url"

	"cortesec-admin/internal/shared/backend"
)

const (
	rolesPath    = "/api/roles/roles/"
	hierarchySub = "jerarquia"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	FindPage(ctx context.Context, query url.Values) (backend.Page[Role], error)
	FindByID(ctx context.Context, id string) (Role, error)
	Create(ctx context.Context, req RoleRequest) (Role, error)
	Update(ctx context.Context, id string, req RoleRequest) (Role, error)
	SetActive(ctx context.Context, id string, active bool) (Role, error)
	Delete(ctx context.Context, id string) error
	Hierarchy(ctx context.Context) ([]HierarchyNode, error)
}

type repository struct {
	roles *backend.Resource[Role]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{roles: backend.NewResource[Role](client, rolesPath)}
}

func (r *repository) FindPage(ctx context.Context, query url.Values) (backend.Page[Role], error) {
	return r.roles.ListPage(ctx, query)
}

func (r *repository) FindByID(ctx context.Context, id string) (Role, error) {
	return r.roles.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req RoleRequest) (Role, error) {
	return r.roles.Create(ctx, req)
}

func (r *repository) Update(ctx context.Context, id string, req RoleRequest) (Role, error) {
	return r.roles.Update(ctx, id, req)
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (Role, error) {
	return r.roles.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.roles.Delete(ctx, id)
}

func (r *repository) Hierarchy(ctx context.Context) ([]HierarchyNode, error) {
	var raw json.RawMessage
	if err := r.roles.CollectionGet(ctx, hierarchySub, nil, &raw); err != nil {
		return nil, err
	}
	page, err := backend.DecodeList[HierarchyNode](raw)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
