package assignment

import (
	"context"
	"strings"
	"time"

	assignmenterrors "cortesec-admin/internal/assignment/errors"
	"cortesec-admin/internal/role"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

// RoleLookup is the slice of the role gateway the workflow needs.
type RoleLookup interface {
	FindByID(ctx context.Context, id string) (role.Role, error)
}

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, f Filter) ([]AssignmentResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	Summary(ctx context.Context) (Summary, error)
	Preview(ctx context.Context, rolID string) (CreatePreview, error)
	Create(ctx context.Context, actorID string, req CreateAssignmentRequest) (MutationResult, error)
	Approve(ctx context.Context, actorID, id string, req ApproveRequest) (MutationResult, error)
	Reject(ctx context.Context, actorID, id, motivo string) (MutationResult, error)
	Revoke(ctx context.Context, actorID, id, motivo string) (MutationResult, error)
}

type service struct {
	repo   Repository
	roles  RoleLookup
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, roles RoleLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{repo: repo, roles: roles, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context, f Filter) ([]AssignmentResponse, response.PaginationMeta, error) {
	estado := strings.ToUpper(strings.TrimSpace(f.Estado))
	if estado != "" && !knownState(estado) {
		return nil, response.PaginationMeta{}, assignmenterrors.ErrInvalidState
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	items = listing.Filter(items, func(a Assignment) bool {
		if estado != "" && a.EstadoNombre != estado {
			return false
		}
		if f.Usuario != "" && a.Usuario.String() != f.Usuario {
			return false
		}
		if f.Rol != "" && a.Rol.String() != f.Rol {
			return false
		}
		return true
	})

	page, meta := listing.Apply(items, f.Query, searchFields, func(a Assignment) bool { return a.Activa })
	return mapToListResponse(page), meta, nil
}

func searchFields(a Assignment) []string {
	fields := []string{a.UsuarioNombre, a.RolNombre, a.EstadoNombre}
	if a.Justificacion != nil {
		fields = append(fields, *a.Justificacion)
	}
	return fields
}

func (s *service) GetByID(ctx context.Context, id string) (AssignmentResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
		}
		return AssignmentResponse{}, err
	}
	return mapToResponse(a), nil
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("assignment summary failed", zap.Error(err))
		return Summary{}, err
	}
	return summarize(items), nil
}

func (s *service) Preview(ctx context.Context, rolID string) (CreatePreview, error) {
	r, err := s.lookupRole(ctx, rolID)
	if err != nil {
		return CreatePreview{}, err
	}
	return preview(r), nil
}

func preview(r role.Role) CreatePreview {
	p := CreatePreview{
		Rol:                r.ID.String(),
		RolNombre:          r.Nombre,
		RequiereAprobacion: r.RequiereAprobacion,
		EstadoEsperado:     ExpectedInitialState(r.RequiereAprobacion),
	}
	if r.RequiereAprobacion {
		p.Aviso = PendingNotice
	}
	return p
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAssignmentRequest) (MutationResult, error) {
	s.logger.Debug("create assignment requested",
		zap.String("actor_id", actorID),
		zap.String("usuario", req.Usuario),
		zap.String("rol", req.Rol),
	)

	req.Justificacion = strings.TrimSpace(req.Justificacion)
	if req.FechaFin != nil && *req.FechaFin != "" && *req.FechaFin < s.now().Format("2006-01-02") {
		return MutationResult{}, assignmenterrors.ErrInvalidEndDate
	}

	r, err := s.lookupRole(ctx, req.Rol)
	if err != nil {
		return MutationResult{}, err
	}
	if !r.Activo {
		return MutationResult{}, assignmenterrors.ErrRoleInactive
	}
	p := preview(r)

	a, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create assignment failed",
			zap.String("usuario", req.Usuario),
			zap.String("rol", req.Rol),
			zap.Error(err),
		)
		return MutationResult{}, err
	}

	s.logger.Info("create assignment success",
		zap.String("assignment_id", a.ID.String()),
		zap.String("expected_state", p.EstadoEsperado),
		zap.String("state", a.EstadoNombre),
	)

	res := s.refresh(ctx, a)
	res.EstadoEsperado = p.EstadoEsperado
	res.Aviso = p.Aviso
	return res, nil
}

func (s *service) Approve(ctx context.Context, actorID, id string, req ApproveRequest) (MutationResult, error) {
	req.Observaciones = strings.TrimSpace(req.Observaciones)
	return s.transition(ctx, actorID, id, ActionApprove, func() (Assignment, error) {
		return s.repo.Approve(ctx, id, req)
	})
}

func (s *service) Reject(ctx context.Context, actorID, id, motivo string) (MutationResult, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return MutationResult{}, assignmenterrors.ErrRejectMotiveRequired
	}
	return s.transition(ctx, actorID, id, ActionReject, func() (Assignment, error) {
		return s.repo.Reject(ctx, id, motivo)
	})
}

func (s *service) Revoke(ctx context.Context, actorID, id, motivo string) (MutationResult, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return MutationResult{}, assignmenterrors.ErrRevokeMotiveRequired
	}
	return s.transition(ctx, actorID, id, ActionRevoke, func() (Assignment, error) {
		return s.repo.Revoke(ctx, id, motivo)
	})
}

// transition issues one backend action. Validity of the transition is
// left to the backend.
func (s *service) transition(ctx context.Context, actorID, id, action string, call func() (Assignment, error)) (MutationResult, error) {
	s.logger.Debug("assignment transition requested",
		zap.String("assignment_id", id),
		zap.String("actor_id", actorID),
		zap.String("action", action),
	)

	a, err := call()
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return MutationResult{}, assignmenterrors.ErrAssignmentNotFound
		}
		s.logger.Warn("assignment transition failed",
			zap.String("assignment_id", id),
			zap.String("action", action),
			zap.Error(err),
		)
		return MutationResult{}, err
	}
	if a.ID == "" {
		a.ID = backend.ID(id)
	}

	s.logger.Info("assignment transition success",
		zap.String("assignment_id", id),
		zap.String("action", action),
		zap.String("state", a.EstadoNombre),
	)
	return s.refresh(ctx, a), nil
}

// refresh re-fetches the whole list after a successful mutation. A failed
// re-fetch does not undo the mutation; the result is flagged instead.
func (s *service) refresh(ctx context.Context, a Assignment) MutationResult {
	res := MutationResult{Asignacion: mapToResponse(a)}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Warn("assignment list refresh failed", zap.Error(err))
		res.Asignaciones = []AssignmentResponse{}
		return res
	}

	// Action endpoints may answer with a message only; take the row from
	// the fresh list then.
	if a.EstadoNombre == "" {
		for _, it := range items {
			if it.ID == a.ID {
				res.Asignacion = mapToResponse(it)
				break
			}
		}
	}

	res.Asignaciones = mapToListResponse(items)
	res.Resumen = summarize(items)
	res.Refrescado = true
	return res
}

func (s *service) lookupRole(ctx context.Context, id string) (role.Role, error) {
	r, err := s.roles.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return role.Role{}, assignmenterrors.ErrRoleNotFound
		}
		s.logger.Error("assignment role lookup failed", zap.String("rol", id), zap.Error(err))
		return role.Role{}, err
	}
	return r, nil
}

func knownState(state string) bool {
	for _, st := range States {
		if st == state {
			return true
		}
	}
	return false
}

func summarize(items []Assignment) Summary {
	sum := Summary{Total: len(items), PorEstado: make(map[string]int, len(States))}
	for _, st := range States {
		sum.PorEstado[st] = 0
	}
	for _, a := range items {
		sum.PorEstado[a.EstadoNombre]++
	}
	return sum
}

func mapToResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		Assignment:       a,
		AvailableActions: AvailableActions(a.EstadoNombre),
		Terminal:         IsTerminal(a.EstadoNombre),
	}
}

func mapToListResponse(items []Assignment) []AssignmentResponse {
	res := make([]AssignmentResponse, len(items))
	for i, a := range items {
		res[i] = mapToResponse(a)
	}
	return res
}
