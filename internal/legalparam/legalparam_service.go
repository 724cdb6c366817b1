package legalparam

import (
	"context"
	"strconv"
	"strings"
	"time"

	legalparamerrors "cortesec-admin/internal/legalparam/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
)

const cachePrefix = "legal_parameters"

//go:generate mockgen -source=legalparam_service.go -destination=mock/legalparam_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, f Filter) ([]LegalParameterResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (LegalParameterResponse, error)
	Total(req TotalRequest) TotalResponse
	Create(ctx context.Context, req LegalParameterRequest) (LegalParameterResponse, error)
	Update(ctx context.Context, id string, req LegalParameterRequest) (LegalParameterResponse, error)
	ToggleActive(ctx context.Context, id string) (LegalParameterResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.Loader
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) Service {
	l := zap.L().Named("legalparam.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("legalparam.service")
	}
	return &service{repo: repo, cache: loader, now: time.Now, logger: l}
}

func listKey(ctx context.Context) string {
	return cache.Key(cachePrefix, "all", contextutil.GetTenantID(ctx))
}

func (s *service) all(ctx context.Context) ([]LegalParameter, error) {
	return cache.GetOrLoad(ctx, s.cache, listKey(ctx), s.repo.FindAll)
}

func (s *service) List(ctx context.Context, f Filter) ([]LegalParameterResponse, response.PaginationMeta, error) {
	items, err := s.all(ctx)
	if err != nil {
		s.logger.Error("list legal parameters failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	day := f.Fecha
	if day.IsZero() {
		day = s.now()
	}
	if f.Vigente != nil {
		want := *f.Vigente
		items = listing.Filter(items, func(p LegalParameter) bool { return p.VigenteEn(day) == want })
	}

	page, meta := listing.Apply(items, f.Query,
		func(p LegalParameter) []string { return []string{p.Codigo, p.Nombre, p.Descripcion} },
		func(p LegalParameter) bool { return p.Activo },
	)

	out := make([]LegalParameterResponse, len(page))
	for i, p := range page {
		out[i] = LegalParameterResponse{LegalParameter: p, Vigente: p.VigenteEn(day)}
	}
	return out, meta, nil
}

func (s *service) get(ctx context.Context, id string) (LegalParameter, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return LegalParameter{}, legalparamerrors.ErrLegalParameterNotFound
		}
		return LegalParameter{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LegalParameterResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return LegalParameterResponse{}, err
	}
	return s.toResponse(p), nil
}

func (s *service) Total(req TotalRequest) TotalResponse {
	return TotalResponse{PorcentajeTotal: TotalPercent(req.PorcentajeEmpleado, req.PorcentajeEmpleador)}
}

func (s *service) Create(ctx context.Context, req LegalParameterRequest) (LegalParameterResponse, error) {
	payload, err := s.prepare(ctx, "", req)
	if err != nil {
		return LegalParameterResponse{}, err
	}

	p, err := s.repo.Create(ctx, payload)
	if err != nil {
		s.logger.Error("create legal parameter failed", zap.String("codigo", payload.Codigo), zap.Error(err))
		return LegalParameterResponse{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("create legal parameter success",
		zap.String("legal_parameter_id", p.ID.String()),
		zap.String("porcentaje_total", payload.PorcentajeTotal),
	)
	return s.toResponse(p), nil
}

func (s *service) Update(ctx context.Context, id string, req LegalParameterRequest) (LegalParameterResponse, error) {
	if req.Activo == nil {
		current, err := s.get(ctx, id)
		if err != nil {
			return LegalParameterResponse{}, err
		}
		req.Activo = &current.Activo
	}

	payload, err := s.prepare(ctx, id, req)
	if err != nil {
		return LegalParameterResponse{}, err
	}

	p, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return LegalParameterResponse{}, legalparamerrors.ErrLegalParameterNotFound
		}
		s.logger.Error("update legal parameter failed", zap.String("legal_parameter_id", id), zap.Error(err))
		return LegalParameterResponse{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return s.toResponse(p), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (LegalParameterResponse, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return LegalParameterResponse{}, err
	}
	if !current.Activo {
		from, to, err := current.window()
		if err != nil {
			return LegalParameterResponse{}, apperror.InvalidField("fecha_inicio_vigencia")
		}
		if err := s.checkOverlap(ctx, id, current.Codigo, from, to); err != nil {
			s.logger.Warn("activate legal parameter blocked by overlapping window", zap.String("legal_parameter_id", id), zap.Error(err))
			return LegalParameterResponse{}, err
		}
	}

	p, err := s.repo.SetActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle legal parameter failed", zap.String("legal_parameter_id", id), zap.Error(err))
		return LegalParameterResponse{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return s.toResponse(p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return legalparamerrors.ErrLegalParameterNotFound
		}
		s.logger.Error("delete legal parameter failed", zap.String("legal_parameter_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return nil
}

// prepare validates req and builds the backend body. id is the record
// being edited, empty on create.
func (s *service) prepare(ctx context.Context, id string, req LegalParameterRequest) (backendPayload, error) {
	codigo := strings.ToUpper(strings.TrimSpace(req.Codigo))

	if req.FechaFinVigencia != nil && strings.TrimSpace(*req.FechaFinVigencia) == "" {
		req.FechaFinVigencia = nil
	}
	from, to, err := parseWindow(req.FechaInicioVigencia, req.FechaFinVigencia)
	if err != nil {
		return backendPayload{}, apperror.InvalidField("fecha_inicio_vigencia")
	}
	if !to.IsZero() && to.Before(from) {
		return backendPayload{}, legalparamerrors.ErrInvalidDateRange
	}

	total := TotalPercent(req.PorcentajeEmpleado, req.PorcentajeEmpleador)
	if t, _ := strconv.ParseFloat(total, 64); t > 100 {
		return backendPayload{}, legalparamerrors.ErrTotalExceeded
	}

	// Create defaults to active; Update has already filled the stored value.
	active := req.Activo == nil || *req.Activo
	if active {
		if err := s.checkOverlap(ctx, id, codigo, from, to); err != nil {
			return backendPayload{}, err
		}
	}

	return backendPayload{
		Codigo:              codigo,
		Nombre:              strings.TrimSpace(req.Nombre),
		Descripcion:         strings.TrimSpace(req.Descripcion),
		PorcentajeEmpleado:  strconv.FormatFloat(req.PorcentajeEmpleado, 'f', 3, 64),
		PorcentajeEmpleador: strconv.FormatFloat(req.PorcentajeEmpleador, 'f', 3, 64),
		PorcentajeTotal:     total,
		ValorFijo:           req.ValorFijo,
		FechaInicioVigencia: req.FechaInicioVigencia,
		FechaFinVigencia:    req.FechaFinVigencia,
		Activo:              active,
	}, nil
}

// checkOverlap rejects a second active window for the same code.
func (s *service) checkOverlap(ctx context.Context, id, codigo string, from, to time.Time) error {
	items, err := s.all(ctx)
	if err != nil {
		return err
	}
	for _, p := range items {
		if !p.Activo || p.ID.String() == id || !strings.EqualFold(p.Codigo, codigo) {
			continue
		}
		pFrom, pTo, err := p.window()
		if err != nil {
			continue
		}
		if overlaps(from, to, pFrom, pTo) {
			return legalparamerrors.ErrOverlappingValidity.WithDetails(map[string]any{"conflicto": p.ID.String()})
		}
	}
	return nil
}

func (s *service) toResponse(p LegalParameter) LegalParameterResponse {
	return LegalParameterResponse{LegalParameter: p, Vigente: p.VigenteEn(s.now())}
}
