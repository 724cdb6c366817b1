package location

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	locationerrors "cortesec-admin/internal/location/errors"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadField = "archivo"

type Handler struct {
	service Service
	bulk    BulkService
	logger  *zap.Logger
}

func NewHandler(service Service, bulk BulkService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("location.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.handler")
	}
	return &Handler{service: service, bulk: bulk, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("location request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// --- Departments ---

func (h *Handler) ListDepartments(c *gin.Context) {
	items, meta, err := h.service.ListDepartments(c.Request.Context(), listing.ParseQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) DepartmentOptions(c *gin.Context) {
	items, err := h.service.DepartmentOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) GetDepartment(c *gin.Context) {
	item, err := h.service.GetDepartment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	item, err := h.service.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) UpdateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	item, err := h.service.UpdateDepartment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) ToggleDepartment(c *gin.Context) {
	item, err := h.service.ToggleDepartment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) DeleteDepartment(c *gin.Context) {
	if err := h.service.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// --- Municipalities ---

func (h *Handler) ListMunicipalities(c *gin.Context) {
	q := MunicipalityQuery{
		Query:        listing.ParseQuery(c),
		Departamento: strings.TrimSpace(c.Query("departamento")),
	}

	items, meta, err := h.service.ListMunicipalities(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetMunicipality(c *gin.Context) {
	item, err := h.service.GetMunicipality(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) CreateMunicipality(c *gin.Context) {
	var req MunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	item, err := h.service.CreateMunicipality(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) UpdateMunicipality(c *gin.Context) {
	var req MunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	item, err := h.service.UpdateMunicipality(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) ToggleMunicipality(c *gin.Context) {
	item, err := h.service.ToggleMunicipality(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) DeleteMunicipality(c *gin.Context) {
	if err := h.service.DeleteMunicipality(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// --- Bulk load ---

func (h *Handler) Template(c *gin.Context) {
	content, err := h.bulk.Template(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, TemplateName, XLSXContentType, content)
}

func (h *Handler) Validate(c *gin.Context) {
	_, content, err := readUpload(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	report, err := h.bulk.Validate(c.Request.Context(), content)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Import(c *gin.Context) {
	name, content, err := readUpload(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	res, err := h.bulk.Import(c.Request.Context(), name, content)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Export(c *gin.Context) {
	f, err := h.bulk.Export(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, f.Name, f.ContentType, f.Content)
}

func readUpload(c *gin.Context) (string, []byte, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return "", nil, locationerrors.ErrFileRequired
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return "", nil, locationerrors.ErrUnsupportedFile
	}
	if fh.Size > MaxUploadSize {
		return "", nil, locationerrors.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, locationerrors.ErrFileRequired
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return "", nil, locationerrors.ErrUnreadableWorkbook
	}
	if len(content) > MaxUploadSize {
		return "", nil, locationerrors.ErrFileTooLarge
	}
	return filepath.Base(fh.Filename), content, nil
}
