package parameter

import (
	"context"
	"sort"
	"strings"
	"sync"

	parametererrors "cortesec-admin/internal/parameter/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	cachePrefix = "parameters"
	// saveConcurrency bounds parallel PATCH calls when a settings page is saved.
	saveConcurrency = 4
)

//go:generate mockgen -source=parameter_service.go -destination=mock/parameter_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, f Filter) ([]ParameterResponse, response.PaginationMeta, error)
	Settings(ctx context.Context, categoria string) ([]CategoryGroup, error)
	SaveSettings(ctx context.Context, categoria string, req SettingsRequest) ([]ParameterResponse, error)
	GetByID(ctx context.Context, id string) (ParameterResponse, error)
	Create(ctx context.Context, req ParameterRequest) (ParameterResponse, error)
	Update(ctx context.Context, id string, req ParameterRequest) (ParameterResponse, error)
	ToggleActive(ctx context.Context, id string) (ParameterResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.Loader
	logger *zap.Logger
}

func NewService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) Service {
	l := zap.L().Named("parameter.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("parameter.service")
	}
	return &service{repo: repo, cache: loader, logger: l}
}

func listKey(ctx context.Context) string {
	return cache.Key(cachePrefix, "all", contextutil.GetTenantID(ctx))
}

func (s *service) all(ctx context.Context) ([]Parameter, error) {
	return cache.GetOrLoad(ctx, s.cache, listKey(ctx), s.repo.FindAll)
}

func (s *service) List(ctx context.Context, f Filter) ([]ParameterResponse, response.PaginationMeta, error) {
	items, err := s.all(ctx)
	if err != nil {
		s.logger.Error("list parameters failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	categoria := strings.ToUpper(strings.TrimSpace(f.Categoria))
	items = listing.Filter(items, func(p Parameter) bool {
		return (categoria == "" || strings.EqualFold(p.Categoria, categoria)) &&
			(f.TipoDato == "" || p.TipoDato == f.TipoDato)
	})

	page, meta := listing.Apply(items, f.Query,
		func(p Parameter) []string { return []string{p.Codigo, p.Nombre, p.Descripcion, p.Categoria} },
		func(p Parameter) bool { return p.Activo },
	)
	return mapToResponses(page), meta, nil
}

// Settings groups active parameters by categoria, in category then code
// order. An empty categoria returns every group.
func (s *service) Settings(ctx context.Context, categoria string) ([]CategoryGroup, error) {
	items, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	categoria = strings.ToUpper(strings.TrimSpace(categoria))

	groups := make(map[string][]ParameterResponse)
	for _, p := range items {
		cat := strings.ToUpper(p.Categoria)
		if !p.Activo || (categoria != "" && cat != categoria) {
			continue
		}
		groups[cat] = append(groups[cat], mapToResponse(p))
	}

	out := make([]CategoryGroup, 0, len(groups))
	for cat, params := range groups {
		sort.Slice(params, func(i, j int) bool { return params[i].Codigo < params[j].Codigo })
		out = append(out, CategoryGroup{Categoria: cat, Parametros: params})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Categoria < out[j].Categoria })
	return out, nil
}

// SaveSettings validates every submitted value before any is written,
// then patches them in parallel.
func (s *service) SaveSettings(ctx context.Context, categoria string, req SettingsRequest) ([]ParameterResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	items, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	categoria = strings.ToUpper(strings.TrimSpace(categoria))

	byCode := make(map[string]Parameter, len(items))
	for _, p := range items {
		if strings.EqualFold(p.Categoria, categoria) {
			byCode[p.Codigo] = p
		}
	}

	type change struct {
		param Parameter
		valor string
	}
	changes := make([]change, 0, len(req.Valores))
	fields := make(map[string][]string)
	for codigo, raw := range req.Valores {
		p, ok := byCode[strings.ToUpper(strings.TrimSpace(codigo))]
		if !ok {
			return nil, parametererrors.ErrUnknownParameter.WithDetails(map[string]any{"codigo": codigo})
		}
		if _, err := ParseValue(p.TipoDato, raw); err != nil {
			fields[p.Codigo] = []string{err.Error()}
			continue
		}
		changes = append(changes, change{param: p, valor: NormalizeValue(p.TipoDato, raw)})
	}
	if len(fields) > 0 {
		return nil, parametererrors.ErrInvalidValue.WithDetails(map[string]any{"fields": fields})
	}

	var (
		mu      sync.Mutex
		results = make([]ParameterResponse, 0, len(changes))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(saveConcurrency)
	for _, ch := range changes {
		ch := ch
		if ch.valor == ch.param.Valor {
			mu.Lock()
			results = append(results, mapToResponse(ch.param))
			mu.Unlock()
			continue
		}
		g.Go(func() error {
			updated, err := s.repo.SetValue(gctx, ch.param.ID.String(), ch.valor)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, mapToResponse(updated))
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()
	// Some values may have been written before the failure.
	s.cache.Invalidate(ctx, listKey(ctx))
	if err != nil {
		l.Error("save settings failed", zap.String("categoria", categoria), zap.Error(err))
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Codigo < results[j].Codigo })
	l.Info("save settings success", zap.String("categoria", categoria), zap.Int("changed", len(changes)))
	return results, nil
}

func (s *service) get(ctx context.Context, id string) (Parameter, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Parameter{}, parametererrors.ErrParameterNotFound
		}
		return Parameter{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ParameterResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return ParameterResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *service) Create(ctx context.Context, req ParameterRequest) (ParameterResponse, error) {
	if err := normalize(&req, true); err != nil {
		return ParameterResponse{}, err
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create parameter failed", zap.String("codigo", req.Codigo), zap.Error(err))
		return ParameterResponse{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("create parameter success", zap.String("parameter_id", p.ID.String()))
	return mapToResponse(p), nil
}

func (s *service) Update(ctx context.Context, id string, req ParameterRequest) (ParameterResponse, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return ParameterResponse{}, err
	}
	if err := normalize(&req, current.Activo); err != nil {
		return ParameterResponse{}, err
	}
	if current.EsSistema {
		if current.Codigo != req.Codigo || current.TipoDato != req.TipoDato {
			return ParameterResponse{}, parametererrors.ErrSystemParameterImmutable
		}
		if current.Activo && !*req.Activo {
			s.logger.Warn("update parameter blocked deactivating system record", zap.String("parameter_id", id))
			return ParameterResponse{}, parametererrors.ErrSystemParameterDeactivate
		}
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.logger.Error("update parameter failed", zap.String("parameter_id", id), zap.Error(err))
		return ParameterResponse{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return mapToResponse(p), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (ParameterResponse, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return ParameterResponse{}, err
	}
	if current.EsSistema && current.Activo {
		s.logger.Warn("toggle parameter blocked for system record", zap.String("parameter_id", id))
		return ParameterResponse{}, parametererrors.ErrSystemParameterDeactivate
	}

	p, err := s.repo.SetActive(ctx, id, !current.Activo)
	if err != nil {
		s.logger.Error("toggle parameter failed", zap.String("parameter_id", id), zap.Error(err))
		return ParameterResponse{}, err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	return mapToResponse(p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if current.EsSistema {
		s.logger.Warn("delete parameter blocked for system record", zap.String("parameter_id", id))
		return parametererrors.ErrSystemParameterDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete parameter failed", zap.String("parameter_id", id), zap.Error(err))
		return err
	}

	s.cache.Invalidate(ctx, listKey(ctx))
	s.logger.Info("delete parameter success", zap.String("parameter_id", id))
	return nil
}

// normalize fills a missing activo with active and checks the value
// against the declared type.
func normalize(req *ParameterRequest, active bool) error {
	req.Codigo = strings.ToUpper(strings.TrimSpace(req.Codigo))
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Categoria = strings.ToUpper(strings.TrimSpace(req.Categoria))
	req.Valor = NormalizeValue(req.TipoDato, req.Valor)
	if req.Activo == nil {
		req.Activo = &active
	}

	if _, err := ParseValue(req.TipoDato, req.Valor); err != nil {
		return parametererrors.ErrInvalidValue.WithDetails(map[string]any{
			"fields": map[string][]string{"valor": {err.Error()}},
		})
	}
	return nil
}

func mapToResponse(p Parameter) ParameterResponse {
	typed, _ := p.Typed()
	return ParameterResponse{Parameter: p, ValorTipado: typed}
}

func mapToResponses(items []Parameter) []ParameterResponse {
	out := make([]ParameterResponse, len(items))
	for i, p := range items {
		out[i] = mapToResponse(p)
	}
	return out
}
