package legalparam

import (
	"net/http"
	"strconv"
	"time"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("legalparam.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("legalparam.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("legal parameter request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	f := Filter{Query: listing.ParseQuery(c)}

	if v, ok := c.GetQuery("vigente"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("vigente"))
			return
		}
		f.Vigente = &b
	}
	if v := c.Query("fecha"); v != "" {
		day, err := time.Parse(time.DateOnly, v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("fecha"))
			return
		}
		f.Fecha = day
	}

	items, meta, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Total(c *gin.Context) {
	var req TotalRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	response.Success(c, http.StatusOK, h.service.Total(req), nil)
}

func (h *Handler) GetById(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req LegalParameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req LegalParameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) ToggleActive(c *gin.Context) {
	item, err := h.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
