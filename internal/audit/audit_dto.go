package audit

import "time"

const MaxEventsPerRequest = 50

type EventInput struct {
	Tipo      EventType      `json:"tipo_evento" binding:"required"`
	Accion    string         `json:"accion" binding:"required,max=200"`
	Pagina    string         `json:"pagina" binding:"max=500"`
	Detalle   map[string]any `json:"detalle"`
	SessionID string         `json:"session_id" binding:"max=64"`
	Timestamp *time.Time     `json:"timestamp"`
}

type IngestRequest struct {
	Events []EventInput `json:"events" binding:"required,min=1,dive"`
}

type IngestResponse struct {
	Aceptados int `json:"aceptados"`
}
