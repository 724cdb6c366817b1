package cargo

import (
	"context"
	"strings"

	cargoerrors "cortesec-admin/internal/cargo/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

const CargoCachePrefix = "cargos"

// CargoAllKey is the cache key of the full cargo list for a tenant.
func CargoAllKey(tenantID string) string {
	return cache.Key(CargoCachePrefix, "all", tenantID)
}

//go:generate mockgen -source=cargo_service.go -destination=mock/cargo_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listing.Query) ([]Cargo, response.PaginationMeta, error)
	Options(ctx context.Context) ([]CargoOption, error)
	GetByID(ctx context.Context, id string) (Cargo, error)
	Create(ctx context.Context, req CargoRequest) (Cargo, error)
	Update(ctx context.Context, id string, req CargoRequest) (Cargo, error)
	ToggleActive(ctx context.Context, id string) (Cargo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.Loader
	logger *zap.Logger
}

func NewService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) Service {
	l := zap.L().Named("cargo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cargo.service")
	}
	return &service{repo: repo, cache: loader, logger: l}
}

func (s *service) all(ctx context.Context) ([]Cargo, error) {
	return cache.GetOrLoad(ctx, s.cache, CargoAllKey(contextutil.GetTenantID(ctx)), s.repo.FindAll)
}

func (s *service) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, CargoAllKey(contextutil.GetTenantID(ctx)))
}

func (s *service) GetAll(ctx context.Context, q listing.Query) ([]Cargo, response.PaginationMeta, error) {
	items, err := s.all(ctx)
	if err != nil {
		s.logger.Error("list cargos failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	page, meta := listing.Apply(items, q,
		func(c Cargo) []string { return []string{c.Codigo, c.Nombre, c.Descripcion} },
		func(c Cargo) bool { return c.Activo },
	)
	return page, meta, nil
}

func (s *service) Options(ctx context.Context) ([]CargoOption, error) {
	items, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	opts := make([]CargoOption, 0, len(items))
	for _, c := range items {
		if c.Activo {
			opts = append(opts, CargoOption{ID: c.ID.String(), Codigo: c.Codigo, Nombre: c.Nombre})
		}
	}
	return opts, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Cargo, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Cargo{}, cargoerrors.ErrCargoNotFound
		}
		return Cargo{}, err
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, req CargoRequest) (Cargo, error) {
	normalize(&req, true)
	if err := s.checkUniqueCode(ctx, "", req.Codigo); err != nil {
		return Cargo{}, err
	}

	c, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create cargo failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return Cargo{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create cargo success", zap.String("cargo_id", c.ID.String()))
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req CargoRequest) (Cargo, error) {
	if req.Activo == nil {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return Cargo{}, err
		}
		req.Activo = &current.Activo
	}
	normalize(&req, true)
	if err := s.checkUniqueCode(ctx, id, req.Codigo); err != nil {
		return Cargo{}, err
	}

	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Cargo{}, cargoerrors.ErrCargoNotFound
		}
		s.logger.Error("update cargo failed", zap.String("cargo_id", id), zap.Error(err))
		return Cargo{}, err
	}

	s.invalidate(ctx)
	return c, nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (Cargo, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Cargo{}, err
	}

	c, err := s.repo.SetActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle cargo failed", zap.String("cargo_id", id), zap.Error(err))
		return Cargo{}, err
	}

	s.invalidate(ctx)
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return cargoerrors.ErrCargoNotFound
		}
		s.logger.Error("delete cargo failed", zap.String("cargo_id", id), zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("delete cargo success", zap.String("cargo_id", id))
	return nil
}

// checkUniqueCode rejects a code already used by another cargo.
func (s *service) checkUniqueCode(ctx context.Context, id, codigo string) error {
	items, err := s.all(ctx)
	if err != nil {
		return err
	}
	for _, c := range items {
		if c.Codigo == codigo && c.ID.String() != id {
			return cargoerrors.ErrDuplicateCode
		}
	}
	return nil
}

func normalize(req *CargoRequest, active bool) {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Activo == nil {
		req.Activo = &active
	}
}
