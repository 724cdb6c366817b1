package location

import (
	"context"
	"io"

	"cortesec-admin/internal/shared/backend"
)

const (
	departmentsPath    = "/api/configuracion/departamentos/"
	municipalitiesPath = "/api/configuracion/municipios/"
	importPath         = "/api/configuracion/ubicaciones/importar/"
	exportPath         = "/api/configuracion/ubicaciones/exportar/"
	importField        = "archivo"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	FindDepartments(ctx context.Context) ([]Department, error)
	FindDepartmentByID(ctx context.Context, id string) (Department, error)
	CreateDepartment(ctx context.Context, req DepartmentRequest) (Department, error)
	UpdateDepartment(ctx context.Context, id string, req DepartmentRequest) (Department, error)
	SetDepartmentActive(ctx context.Context, id string, active bool) (Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	FindMunicipalities(ctx context.Context) ([]Municipality, error)
	FindMunicipalityByID(ctx context.Context, id string) (Municipality, error)
	CreateMunicipality(ctx context.Context, req MunicipalityRequest) (Municipality, error)
	UpdateMunicipality(ctx context.Context, id string, req MunicipalityRequest) (Municipality, error)
	SetMunicipalityActive(ctx context.Context, id string, active bool) (Municipality, error)
	DeleteMunicipality(ctx context.Context, id string) error

	Import(ctx context.Context, filename string, content io.Reader) (ImportResult, error)
	Export(ctx context.Context) (backend.File, error)
}

type repository struct {
	client         *backend.Client
	departments    *backend.Resource[Department]
	municipalities *backend.Resource[Municipality]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{
		client:         client,
		departments:    backend.NewResource[Department](client, departmentsPath),
		municipalities: backend.NewResource[Municipality](client, municipalitiesPath),
	}
}

func (r *repository) FindDepartments(ctx context.Context) ([]Department, error) {
	return r.departments.List(ctx, nil)
}

func (r *repository) FindDepartmentByID(ctx context.Context, id string) (Department, error) {
	return r.departments.Get(ctx, id)
}

func (r *repository) CreateDepartment(ctx context.Context, req DepartmentRequest) (Department, error) {
	return r.departments.Create(ctx, req)
}

func (r *repository) UpdateDepartment(ctx context.Context, id string, req DepartmentRequest) (Department, error) {
	return r.departments.Update(ctx, id, req)
}

func (r *repository) SetDepartmentActive(ctx context.Context, id string, active bool) (Department, error) {
	return r.departments.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) DeleteDepartment(ctx context.Context, id string) error {
	return r.departments.Delete(ctx, id)
}

func (r *repository) FindMunicipalities(ctx context.Context) ([]Municipality, error) {
	return r.municipalities.List(ctx, nil)
}

func (r *repository) FindMunicipalityByID(ctx context.Context, id string) (Municipality, error) {
	return r.municipalities.Get(ctx, id)
}

func (r *repository) CreateMunicipality(ctx context.Context, req MunicipalityRequest) (Municipality, error) {
	return r.municipalities.Create(ctx, req)
}

func (r *repository) UpdateMunicipality(ctx context.Context, id string, req MunicipalityRequest) (Municipality, error) {
	return r.municipalities.Update(ctx, id, req)
}

func (r *repository) SetMunicipalityActive(ctx context.Context, id string, active bool) (Municipality, error) {
	return r.municipalities.Patch(ctx, id, ActiveRequest{Activo: active})
}

func (r *repository) DeleteMunicipality(ctx context.Context, id string) error {
	return r.municipalities.Delete(ctx, id)
}

func (r *repository) Import(ctx context.Context, filename string, content io.Reader) (ImportResult, error) {
	var out ImportResult
	err := r.client.Upload(ctx, importPath, importField, filename, content, &out)
	return out, err
}

func (r *repository) Export(ctx context.Context) (backend.File, error) {
	return r.client.Download(ctx, exportPath, nil)
}
