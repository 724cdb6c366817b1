package rbac

import (
	"net/http"
	"strings"

	"cortesec-admin/internal/middleware"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func sessionRoles(c *gin.Context) []string {
	v, _ := c.Get(middleware.ContextRoles)
	roles, _ := v.([]string)
	return roles
}

// Enforce answers whether the current session may perform resource:action,
// letting the UI hide buttons it would be refused anyway.
func (h *Handler) Enforce(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	allowed, err := h.service.Enforce(EnforceRequest{
		UserID:   c.GetString(middleware.ContextUserID),
		TenantID: c.GetString(middleware.ContextTenantID),
		Roles:    sessionRoles(c),
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		h.logger.Error("rbac enforce failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	perms, err := h.service.Permissions(c.GetString(middleware.ContextUserID), sessionRoles(c))
	if err != nil {
		h.logger.Error("rbac permissions failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}
