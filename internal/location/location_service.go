package location

import (
	"context"
	"strings"

	locationerrors "cortesec-admin/internal/location/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

const (
	departmentsCachePrefix    = "departments"
	municipalitiesCachePrefix = "municipalities"
)

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	ListDepartments(ctx context.Context, q listing.Query) ([]Department, response.PaginationMeta, error)
	DepartmentOptions(ctx context.Context) ([]Department, error)
	GetDepartment(ctx context.Context, id string) (Department, error)
	CreateDepartment(ctx context.Context, req DepartmentRequest) (Department, error)
	UpdateDepartment(ctx context.Context, id string, req DepartmentRequest) (Department, error)
	ToggleDepartment(ctx context.Context, id string) (Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListMunicipalities(ctx context.Context, q MunicipalityQuery) ([]Municipality, response.PaginationMeta, error)
	GetMunicipality(ctx context.Context, id string) (Municipality, error)
	CreateMunicipality(ctx context.Context, req MunicipalityRequest) (Municipality, error)
	UpdateMunicipality(ctx context.Context, id string, req MunicipalityRequest) (Municipality, error)
	ToggleMunicipality(ctx context.Context, id string) (Municipality, error)
	DeleteMunicipality(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.Loader
	logger *zap.Logger
}

func NewService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) Service {
	l := zap.L().Named("location.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.service")
	}
	return &service{repo: repo, cache: loader, logger: l}
}

func departmentsKey(ctx context.Context) string {
	return cache.Key(departmentsCachePrefix, "all", contextutil.GetTenantID(ctx))
}

func municipalitiesKey(ctx context.Context) string {
	return cache.Key(municipalitiesCachePrefix, "all", contextutil.GetTenantID(ctx))
}

func (s *service) departments(ctx context.Context) ([]Department, error) {
	return cache.GetOrLoad(ctx, s.cache, departmentsKey(ctx), s.repo.FindDepartments)
}

func (s *service) municipalities(ctx context.Context) ([]Municipality, error) {
	return cache.GetOrLoad(ctx, s.cache, municipalitiesKey(ctx), s.repo.FindMunicipalities)
}

// invalidate drops both lists: municipality rows embed the department name.
func (s *service) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, departmentsKey(ctx), municipalitiesKey(ctx))
}

func (s *service) ListDepartments(ctx context.Context, q listing.Query) ([]Department, response.PaginationMeta, error) {
	items, err := s.departments(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	page, meta := listing.Apply(items, q,
		func(d Department) []string { return []string{d.Codigo, d.Nombre} },
		func(d Department) bool { return d.Activo },
	)
	return page, meta, nil
}

func (s *service) DepartmentOptions(ctx context.Context) ([]Department, error) {
	items, err := s.departments(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Filter(items, func(d Department) bool { return d.Activo }), nil
}

func (s *service) GetDepartment(ctx context.Context, id string) (Department, error) {
	d, err := s.repo.FindDepartmentByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Department{}, locationerrors.ErrDepartmentNotFound
		}
		return Department{}, err
	}
	return d, nil
}

func (s *service) CreateDepartment(ctx context.Context, req DepartmentRequest) (Department, error) {
	normalizeDepartment(&req, true)

	d, err := s.repo.CreateDepartment(ctx, req)
	if err != nil {
		s.logger.Error("create department failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return Department{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create department success", zap.String("department_id", d.ID.String()))
	return d, nil
}

func (s *service) UpdateDepartment(ctx context.Context, id string, req DepartmentRequest) (Department, error) {
	if req.Activo == nil {
		current, err := s.GetDepartment(ctx, id)
		if err != nil {
			return Department{}, err
		}
		req.Activo = &current.Activo
	}
	normalizeDepartment(&req, true)

	d, err := s.repo.UpdateDepartment(ctx, id, req)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Department{}, locationerrors.ErrDepartmentNotFound
		}
		s.logger.Error("update department failed", zap.String("department_id", id), zap.Error(err))
		return Department{}, err
	}

	s.invalidate(ctx)
	return d, nil
}

func (s *service) ToggleDepartment(ctx context.Context, id string) (Department, error) {
	current, err := s.GetDepartment(ctx, id)
	if err != nil {
		return Department{}, err
	}

	d, err := s.repo.SetDepartmentActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle department failed", zap.String("department_id", id), zap.Error(err))
		return Department{}, err
	}

	s.invalidate(ctx)
	return d, nil
}

// DeleteDepartment refuses while municipalities still point at the department.
func (s *service) DeleteDepartment(ctx context.Context, id string) error {
	munis, err := s.municipalities(ctx)
	if err != nil {
		return err
	}
	for _, m := range munis {
		if m.Departamento.String() == id {
			return locationerrors.ErrDepartmentInUse
		}
	}

	if err := s.repo.DeleteDepartment(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return locationerrors.ErrDepartmentNotFound
		}
		s.logger.Error("delete department failed", zap.String("department_id", id), zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func (s *service) ListMunicipalities(ctx context.Context, q MunicipalityQuery) ([]Municipality, response.PaginationMeta, error) {
	items, err := s.municipalities(ctx)
	if err != nil {
		s.logger.Error("list municipalities failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	if q.Departamento != "" {
		items = listing.Filter(items, func(m Municipality) bool { return m.Departamento.String() == q.Departamento })
	}

	page, meta := listing.Apply(items, q.Query,
		func(m Municipality) []string { return []string{m.Codigo, m.Nombre, m.DepartamentoNombre} },
		func(m Municipality) bool { return m.Activo },
	)
	return page, meta, nil
}

func (s *service) GetMunicipality(ctx context.Context, id string) (Municipality, error) {
	m, err := s.repo.FindMunicipalityByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Municipality{}, locationerrors.ErrMunicipalityNotFound
		}
		return Municipality{}, err
	}
	return m, nil
}

func (s *service) CreateMunicipality(ctx context.Context, req MunicipalityRequest) (Municipality, error) {
	normalizeMunicipality(&req, true)
	if err := s.checkParent(ctx, req.Departamento); err != nil {
		return Municipality{}, err
	}

	m, err := s.repo.CreateMunicipality(ctx, req)
	if err != nil {
		s.logger.Error("create municipality failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return Municipality{}, err
	}

	s.cache.Invalidate(ctx, municipalitiesKey(ctx))
	s.logger.Info("create municipality success", zap.String("municipality_id", m.ID.String()))
	return m, nil
}

func (s *service) UpdateMunicipality(ctx context.Context, id string, req MunicipalityRequest) (Municipality, error) {
	current, err := s.GetMunicipality(ctx, id)
	if err != nil {
		return Municipality{}, err
	}
	normalizeMunicipality(&req, current.Activo)
	if current.Departamento.String() != req.Departamento {
		if err := s.checkParent(ctx, req.Departamento); err != nil {
			return Municipality{}, err
		}
	}

	m, err := s.repo.UpdateMunicipality(ctx, id, req)
	if err != nil {
		s.logger.Error("update municipality failed", zap.String("municipality_id", id), zap.Error(err))
		return Municipality{}, err
	}

	s.cache.Invalidate(ctx, municipalitiesKey(ctx))
	return m, nil
}

func (s *service) ToggleMunicipality(ctx context.Context, id string) (Municipality, error) {
	current, err := s.GetMunicipality(ctx, id)
	if err != nil {
		return Municipality{}, err
	}

	m, err := s.repo.SetMunicipalityActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle municipality failed", zap.String("municipality_id", id), zap.Error(err))
		return Municipality{}, err
	}

	s.cache.Invalidate(ctx, municipalitiesKey(ctx))
	return m, nil
}

func (s *service) DeleteMunicipality(ctx context.Context, id string) error {
	if err := s.repo.DeleteMunicipality(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return locationerrors.ErrMunicipalityNotFound
		}
		s.logger.Error("delete municipality failed", zap.String("municipality_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, municipalitiesKey(ctx))
	return nil
}

// checkParent requires the target department to exist and be active.
func (s *service) checkParent(ctx context.Context, departmentID string) error {
	d, err := s.GetDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	if !d.Activo {
		return locationerrors.ErrDepartmentInactive
	}
	return nil
}

// normalizeDepartment fills a missing activo with active. Updates pass the
// stored value so an edit never flips it.
func normalizeDepartment(req *DepartmentRequest, active bool) {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Activo == nil {
		req.Activo = &active
	}
}

func normalizeMunicipality(req *MunicipalityRequest, active bool) {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Departamento = strings.TrimSpace(req.Departamento)
	if req.Activo == nil {
		req.Activo = &active
	}
}
