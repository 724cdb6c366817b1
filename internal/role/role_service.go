package role

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	roleerrors "cortesec-admin/internal/role/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q listing.Query) ([]RoleResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	Create(ctx context.Context, req RoleRequest) (RoleResponse, error)
	Update(ctx context.Context, id string, req RoleRequest) (RoleResponse, error)
	ToggleActive(ctx context.Context, id string) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

// List forwards paging to the backend. When the backend answers with a
// bare array the page is cut here instead.
func (s *service) List(ctx context.Context, q listing.Query) ([]RoleResponse, response.PaginationMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("page_size", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Active != nil {
		query.Set("activo", strconv.FormatBool(*q.Active))
	}

	page, err := s.repo.FindPage(ctx, query)
	if err != nil {
		s.logger.Error("list roles failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	roles := page.Results
	var meta response.PaginationMeta
	if page.Bare {
		roles, meta = listing.Apply(roles, q, roleSearchFields, func(r Role) bool { return r.Activo })
	} else {
		meta = response.NewPaginationMeta(page.Count, q.Page, q.PageSize)
	}

	return s.mapToListResponse(roles), meta, nil
}

func roleSearchFields(r Role) []string {
	return []string{r.Codigo, r.Nombre, r.Descripcion, r.TipoRolNombre}
}

func (s *service) GetByID(ctx context.Context, id string) (RoleResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}
	return s.mapToResponse(r), nil
}

func (s *service) Create(ctx context.Context, req RoleRequest) (RoleResponse, error) {
	s.logger.Debug("create role requested", zap.String("codigo", req.Codigo))

	if err := validateRequest("", &req); err != nil {
		s.logger.Warn("create role validation failed", zap.Error(err))
		return RoleResponse{}, err
	}

	r, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create role failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("create role success", zap.String("role_id", r.ID.String()), zap.String("codigo", r.Codigo))
	return s.mapToResponse(r), nil
}

func (s *service) Update(ctx context.Context, id string, req RoleRequest) (RoleResponse, error) {
	s.logger.Debug("update role requested", zap.String("role_id", id))

	if err := validateRequest(id, &req); err != nil {
		s.logger.Warn("update role validation failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, err
	}

	// An omitted activo keeps the stored value.
	if req.Activo == nil || !*req.Activo {
		current, err := s.find(ctx, id)
		if err != nil {
			return RoleResponse{}, err
		}
		if req.Activo == nil {
			active := current.Activo
			req.Activo = &active
		} else if current.EsSistema && current.Activo {
			return RoleResponse{}, roleerrors.ErrSystemRoleDeactivate
		}
	}

	r, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.logger.Error("update role failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("update role success", zap.String("role_id", id))
	return s.mapToResponse(r), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (RoleResponse, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}
	if current.EsSistema && current.Activo {
		s.logger.Warn("toggle role blocked for system role", zap.String("role_id", id))
		return RoleResponse{}, roleerrors.ErrSystemRoleDeactivate
	}

	r, err := s.repo.SetActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle role failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("toggle role success", zap.String("role_id", id), zap.Bool("activo", r.Activo))
	return s.mapToResponse(r), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if current.EsSistema {
		s.logger.Warn("delete role blocked for system role", zap.String("role_id", id))
		return roleerrors.ErrSystemRoleDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete role failed", zap.String("role_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete role success", zap.String("role_id", id))
	return nil
}

func (s *service) find(ctx context.Context, id string) (Role, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Role{}, roleerrors.ErrRoleNotFound
		}
		return Role{}, err
	}
	return r, nil
}

// validateRequest applies the form rules the binding tags cannot express
// and fills defaults.
func validateRequest(id string, req *RoleRequest) error {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)

	if req.DiasSemana == "" {
		req.DiasSemana = DiasSemanaTodos
	}
	if id == "" && req.Activo == nil {
		active := true
		req.Activo = &active
	}

	if id != "" && req.RolPadre != nil && req.RolPadre.String() == id {
		return roleerrors.ErrSelfParent
	}

	if req.FechaInicioVigencia != nil && req.FechaFinVigencia != nil &&
		*req.FechaInicioVigencia != "" && *req.FechaFinVigencia != "" &&
		*req.FechaFinVigencia < *req.FechaInicioVigencia {
		return roleerrors.ErrInvalidDateRange
	}

	if req.HoraInicio != nil && req.HoraFin != nil && *req.HoraInicio != "" && *req.HoraFin != "" &&
		normalizeClock(*req.HoraInicio) >= normalizeClock(*req.HoraFin) {
		return roleerrors.ErrInvalidScheduleRange
	}

	for _, raw := range []json.RawMessage{req.Metadatos, req.Configuracion} {
		if len(raw) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return roleerrors.ErrInvalidJSON
		}
	}
	return nil
}

func (s *service) mapToResponse(r Role) RoleResponse {
	return RoleResponse{Role: r, EnHorario: r.ActiveAt(s.now())}
}

func (s *service) mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = s.mapToResponse(r)
	}
	return res
}
