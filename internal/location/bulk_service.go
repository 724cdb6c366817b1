package location

import (
	"bytes"
	"context"
	"fmt"
	"time"

	locationerrors "cortesec-admin/internal/location/errors"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

// MaxUploadSize bounds workbooks accepted for validation and import.
const MaxUploadSize = 10 << 20

// BulkService covers the spreadsheet side of the location pages.
type BulkService interface {
	Template(ctx context.Context) ([]byte, error)
	Validate(ctx context.Context, content []byte) (ValidationReport, error)
	Import(ctx context.Context, filename string, content []byte) (ImportResult, error)
	Export(ctx context.Context) (backend.File, error)
}

type bulkService struct {
	repo   Repository
	cache  *cache.Loader
	logger *zap.Logger
}

func NewBulkService(repo Repository, loader *cache.Loader, logger ...*zap.Logger) BulkService {
	l := zap.L().Named("location.bulk")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.bulk")
	}
	return &bulkService{repo: repo, cache: loader, logger: l}
}

func (s *bulkService) Template(ctx context.Context) ([]byte, error) {
	depts, err := cache.GetOrLoad(ctx, s.cache, departmentsKey(ctx), s.repo.FindDepartments)
	if err != nil {
		return nil, err
	}
	return BuildTemplate(depts)
}

func (s *bulkService) Validate(ctx context.Context, content []byte) (ValidationReport, error) {
	if len(content) > MaxUploadSize {
		return ValidationReport{}, locationerrors.ErrFileTooLarge
	}

	depts, err := cache.GetOrLoad(ctx, s.cache, departmentsKey(ctx), s.repo.FindDepartments)
	if err != nil {
		return ValidationReport{}, err
	}

	report, err := ValidateWorkbook(bytes.NewReader(content), depts)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("unreadable workbook", zap.Error(err))
		return ValidationReport{}, locationerrors.ErrUnreadableWorkbook
	}
	return report, nil
}

// Import validates locally and only forwards a clean workbook.
func (s *bulkService) Import(ctx context.Context, filename string, content []byte) (ImportResult, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	report, err := s.Validate(ctx, content)
	if err != nil {
		return ImportResult{}, err
	}
	if !report.Valido {
		l.Info("import rejected by local validation", zap.Int("issues", len(report.Errores)))
		return ImportResult{}, locationerrors.ErrInvalidWorkbook.WithDetails(report)
	}

	res, err := s.repo.Import(ctx, filename, bytes.NewReader(content))
	if err != nil {
		l.Error("location import failed", zap.String("filename", filename), zap.Error(err))
		return ImportResult{}, err
	}

	s.cache.Invalidate(ctx, departmentsKey(ctx), municipalitiesKey(ctx))
	l.Info("location import success",
		zap.Int("departamentos", report.Departamentos),
		zap.Int("municipios", report.Municipios),
	)
	return res, nil
}

func (s *bulkService) Export(ctx context.Context) (backend.File, error) {
	f, err := s.repo.Export(ctx)
	if err != nil {
		return backend.File{}, err
	}
	if f.Name == "" {
		f.Name = fmt.Sprintf("ubicaciones_%s.xlsx", time.Now().Format("20060102"))
	}
	if f.ContentType == "" {
		f.ContentType = XLSXContentType
	}
	return f, nil
}
