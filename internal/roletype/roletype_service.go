package roletype

import (
	"context"
	"strings"

	roletypeerrors "cortesec-admin/internal/roletype/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

const cachePrefix = "role_types"

//go:generate mockgen -source=roletype_service.go -destination=mock/roletype_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q listing.Query) ([]RoleType, response.PaginationMeta, error)
	Options(ctx context.Context) ([]RoleType, error)
	GetByID(ctx context.Context, id string) (RoleType, error)
	Create(ctx context.Context, req RoleTypeRequest) (RoleType, error)
	Update(ctx context.Context, id string, req RoleTypeRequest) (RoleType, error)
	ToggleActive(ctx context.Context, id string) (RoleType, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.Loader
	logger *zap.Logger
}

func NewService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) Service {
	l := zap.L().Named("roletype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roletype.service")
	}
	return &service{repo: repo, cache: loader, logger: l}
}

func listKey(ctx context.Context) string {
	return cache.Key(cachePrefix, "all", contextutil.GetTenantID(ctx))
}

func (s *service) all(ctx context.Context) ([]RoleType, error) {
	return cache.GetOrLoad(ctx, s.cache, listKey(ctx), s.repo.FindAll)
}

func (s *service) List(ctx context.Context, q listing.Query) ([]RoleType, response.PaginationMeta, error) {
	items, err := s.all(ctx)
	if err != nil {
		s.logger.Error("list role types failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	page, meta := listing.Apply(items, q,
		func(t RoleType) []string { return []string{t.Codigo, t.Nombre, t.Descripcion} },
		func(t RoleType) bool { return t.Activo },
	)
	return page, meta, nil
}

// Options returns the active role types for select inputs.
func (s *service) Options(ctx context.Context) ([]RoleType, error) {
	items, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Filter(items, func(t RoleType) bool { return t.Activo }), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RoleType, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return RoleType{}, roletypeerrors.ErrRoleTypeNotFound
		}
		return RoleType{}, err
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, req RoleTypeRequest) (RoleType, error) {
	normalize(&req, true)

	t, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create role type failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return RoleType{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("create role type success", zap.String("role_type_id", t.ID.String()))
	return t, nil
}

func (s *service) Update(ctx context.Context, id string, req RoleTypeRequest) (RoleType, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return RoleType{}, err
	}
	normalize(&req, current.Activo)
	if current.EsSistema {
		if req.Codigo != current.Codigo {
			return RoleType{}, roletypeerrors.ErrSystemCodeImmutable
		}
		if current.Activo && !*req.Activo {
			return RoleType{}, roletypeerrors.ErrSystemRoleTypeDeactivate
		}
	}

	t, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.logger.Error("update role type failed", zap.String("role_type_id", id), zap.Error(err))
		return RoleType{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("update role type success", zap.String("role_type_id", id))
	return t, nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (RoleType, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return RoleType{}, err
	}
	if current.EsSistema && current.Activo {
		return RoleType{}, roletypeerrors.ErrSystemRoleTypeDeactivate
	}

	t, err := s.repo.SetActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle role type failed", zap.String("role_type_id", id), zap.Error(err))
		return RoleType{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.EsSistema {
		s.logger.Warn("delete role type blocked for system record", zap.String("role_type_id", id))
		return roletypeerrors.ErrSystemRoleTypeDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete role type failed", zap.String("role_type_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("delete role type success", zap.String("role_type_id", id))
	return nil
}

// normalize fills a missing activo with active.
func normalize(req *RoleTypeRequest, active bool) {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Activo == nil {
		req.Activo = &active
	}
}
