package audit

import (
	"net/http"

	auditerrors "cortesec-admin/internal/audit/errors"
	"cortesec-admin/internal/middleware"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger is the recorder side used by the HTTP layer.
type Logger interface {
	Log(e Event)
}

type Handler struct {
	recorder Logger
	logger   *zap.Logger
}

func NewHandler(recorder Logger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{recorder: recorder, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("audit request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Ingest accepts a batch of browser events and queues them. Nothing is
// queued unless every event is valid.
func (h *Handler) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if len(req.Events) > MaxEventsPerRequest {
		h.writeServiceError(c, auditerrors.ErrTooManyEvents.WithDetails(gin.H{"max": MaxEventsPerRequest}))
		return
	}
	for i, in := range req.Events {
		if !in.Tipo.Valid() {
			h.writeServiceError(c, auditerrors.ErrInvalidEventType.WithDetails(gin.H{
				"index":       i,
				"tipo_evento": in.Tipo,
			}))
			return
		}
	}

	base := requestEvent(c)
	for _, in := range req.Events {
		e := base
		e.Tipo = in.Tipo
		e.Accion = in.Accion
		e.Pagina = in.Pagina
		e.Detalle = in.Detalle
		e.SessionID = in.SessionID
		if in.Timestamp != nil {
			e.Timestamp = in.Timestamp.UTC()
		}
		h.recorder.Log(e)
	}

	response.Success(c, http.StatusAccepted, IngestResponse{Aceptados: len(req.Events)}, nil)
}

// requestEvent fills the fields every event takes from the request itself.
func requestEvent(c *gin.Context) Event {
	return Event{
		Usuario:   c.GetString(middleware.ContextUserID),
		Tenant:    c.GetString(middleware.ContextTenantID),
		RequestID: contextutil.GetRequestID(c.Request.Context()),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
