package assignment

import "cortesec-admin/internal/shared/backend"

const (
	StatePending  = "PENDIENTE"
	StateActive   = "ACTIVA"
	StateApproved = "APROBADA"
	StateRevoked  = "REVOCADA"
	StateRejected = "RECHAZADA"
	StateInactive = "INACTIVA"
	StateExpired  = "EXPIRADA"
)

const (
	ActionApprove = "aprobar"
	ActionReject  = "rechazar"
	ActionRevoke  = "revocar"
)

// PendingNotice is shown before creating an assignment for a role that
// requires approval.
const PendingNotice = "La asignación quedará PENDIENTE hasta su aprobación"

// States lists every state in display order.
var States = []string{
	StatePending,
	StateActive,
	StateApproved,
	StateRevoked,
	StateRejected,
	StateInactive,
	StateExpired,
}

// Assignment is the backend representation of /api/roles/asignaciones/.
type Assignment struct {
	ID               backend.ID  `json:"id"`
	Usuario          backend.ID  `json:"usuario"`
	UsuarioNombre    string      `json:"usuario_nombre"`
	Rol              backend.ID  `json:"rol"`
	RolNombre        string      `json:"rol_nombre"`
	EstadoNombre     string      `json:"estado_nombre"`
	Activa           bool        `json:"activa"`
	FechaAsignacion  string      `json:"fecha_asignacion"`
	FechaFin         *string     `json:"fecha_fin"`
	Justificacion    *string     `json:"justificacion"`
	Observaciones    *string     `json:"observaciones"`
	AsignadoPor      *backend.ID `json:"asignado_por"`
	AprobadoPor      *backend.ID `json:"aprobado_por"`
	FechaAprobacion  *string     `json:"fecha_aprobacion"`
	MotivoRechazo    *string     `json:"motivo_rechazo,omitempty"`
	MotivoRevocacion *string     `json:"motivo_revocacion,omitempty"`
}

// IsTerminal reports whether no further transition is offered from state.
func IsTerminal(state string) bool {
	switch state {
	case StateRevoked, StateRejected, StateExpired:
		return true
	default:
		return false
	}
}

// AvailableActions returns the transitions the UI offers for state. The
// backend stays the authority; this only drives which buttons appear.
func AvailableActions(state string) []string {
	switch state {
	case StatePending:
		return []string{ActionApprove, ActionReject}
	case StateActive, StateApproved:
		return []string{ActionRevoke}
	default:
		return []string{}
	}
}

// ExpectedInitialState is the state a new assignment starts in.
func ExpectedInitialState(requiresApproval bool) string {
	if requiresApproval {
		return StatePending
	}
	return StateActive
}
