package modulo

import (
	"context"
	"sort"
	"strings"

	moduloerrors "cortesec-admin/internal/modulo/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

const cachePrefix = "modules"

//go:generate mockgen -source=modulo_service.go -destination=mock/modulo_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listing.Query) ([]Module, response.PaginationMeta, error)
	Menu(ctx context.Context) ([]Module, error)
	GetByID(ctx context.Context, id string) (Module, error)
	Create(ctx context.Context, req ModuleRequest) (Module, error)
	Update(ctx context.Context, id string, req ModuleRequest) (Module, error)
	ToggleActive(ctx context.Context, id string) (Module, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.Loader
	logger *zap.Logger
}

func NewService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) Service {
	l := zap.L().Named("modulo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("modulo.service")
	}
	return &service{repo: repo, cache: loader, logger: l}
}

func listKey(ctx context.Context) string {
	return cache.Key(cachePrefix, "all", contextutil.GetTenantID(ctx))
}

// all returns every module ordered by orden, then nombre.
func (s *service) all(ctx context.Context) ([]Module, error) {
	items, err := cache.GetOrLoad(ctx, s.cache, listKey(ctx), s.repo.FindAll)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Orden != items[j].Orden {
			return items[i].Orden < items[j].Orden
		}
		return items[i].Nombre < items[j].Nombre
	})
	return items, nil
}

func (s *service) GetAll(ctx context.Context, q listing.Query) ([]Module, response.PaginationMeta, error) {
	items, err := s.all(ctx)
	if err != nil {
		s.logger.Error("list modules failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	page, meta := listing.Apply(items, q,
		func(m Module) []string { return []string{m.Codigo, m.Nombre, m.Descripcion} },
		func(m Module) bool { return m.Activo },
	)
	return page, meta, nil
}

// Menu returns the active modules in navigation order.
func (s *service) Menu(ctx context.Context) ([]Module, error) {
	items, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Filter(items, func(m Module) bool { return m.Activo }), nil
}

func (s *service) GetByID(ctx context.Context, id string) (Module, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Module{}, moduloerrors.ErrModuleNotFound
		}
		return Module{}, err
	}
	return m, nil
}

func (s *service) Create(ctx context.Context, req ModuleRequest) (Module, error) {
	normalize(&req, true)

	m, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create module failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return Module{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("create module success", zap.String("module_id", m.ID.String()))
	return m, nil
}

func (s *service) Update(ctx context.Context, id string, req ModuleRequest) (Module, error) {
	if req.Activo == nil {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return Module{}, err
		}
		req.Activo = &current.Activo
	}
	normalize(&req, true)

	m, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Module{}, moduloerrors.ErrModuleNotFound
		}
		s.logger.Error("update module failed", zap.String("module_id", id), zap.Error(err))
		return Module{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return m, nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (Module, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Module{}, err
	}

	m, err := s.repo.SetActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle module failed", zap.String("module_id", id), zap.Error(err))
		return Module{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return m, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return moduloerrors.ErrModuleNotFound
		}
		s.logger.Error("delete module failed", zap.String("module_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return nil
}

func normalize(req *ModuleRequest, active bool) {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Icono = strings.TrimSpace(req.Icono)
	if req.Activo == nil {
		req.Activo = &active
	}
}
