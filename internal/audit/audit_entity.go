package audit

import "time"

type EventType string

const (
	EventNavigation  EventType = "navigation"
	EventButtonClick EventType = "button_click"
	EventModalOpen   EventType = "modal_open"
	EventModalClose  EventType = "modal_close"
	EventSearch      EventType = "search"
	EventFilter      EventType = "filter"
	EventFormSubmit  EventType = "form_submit"
	EventDownload    EventType = "download"
	EventExport      EventType = "export"
	EventTabChange   EventType = "tab_change"
	EventCustom      EventType = "custom"
)

var eventTypes = map[EventType]struct{}{
	EventNavigation:  {},
	EventButtonClick: {},
	EventModalOpen:   {},
	EventModalClose:  {},
	EventSearch:      {},
	EventFilter:      {},
	EventFormSubmit:  {},
	EventDownload:    {},
	EventExport:      {},
	EventTabChange:   {},
	EventCustom:      {},
}

func (t EventType) Valid() bool {
	_, ok := eventTypes[t]
	return ok
}

// Event is one user interaction as stored by the backend audit log.
type Event struct {
	ID        string         `json:"id"`
	Tipo      EventType      `json:"tipo_evento"`
	Accion    string         `json:"accion"`
	Pagina    string         `json:"pagina,omitempty"`
	Detalle   map[string]any `json:"detalle,omitempty"`
	Usuario   string         `json:"usuario,omitempty"`
	Tenant    string         `json:"tenant,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	IP        string         `json:"ip,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
