package role

import (
	"encoding/json"
	"time"

	"cortesec-admin/internal/shared/backend"
)

const (
	dateLayout = "2006-01-02"
	// DiasSemanaTodos is the schedule default: every day, Monday first.
	DiasSemanaTodos = "1111111"
)

// Role is the backend representation of /api/roles/roles/.
type Role struct {
	ID                  backend.ID      `json:"id"`
	Codigo              string          `json:"codigo"`
	Nombre              string          `json:"nombre"`
	Descripcion         string          `json:"descripcion"`
	TipoRol             *backend.ID     `json:"tipo_rol"`
	TipoRolNombre       string          `json:"tipo_rol_nombre,omitempty"`
	RolPadre            *backend.ID     `json:"rol_padre"`
	RolPadreNombre      string          `json:"rol_padre_nombre,omitempty"`
	NivelJerarquico     int             `json:"nivel_jerarquico"`
	HeredaPermisos      bool            `json:"hereda_permisos"`
	RequiereAprobacion  bool            `json:"requiere_aprobacion"`
	Activo              bool            `json:"activo"`
	EsSistema           bool            `json:"es_sistema"`
	FechaInicioVigencia *string         `json:"fecha_inicio_vigencia"`
	FechaFinVigencia    *string         `json:"fecha_fin_vigencia"`
	HoraInicio          *string         `json:"hora_inicio"`
	HoraFin             *string         `json:"hora_fin"`
	DiasSemana          string          `json:"dias_semana"`
	Metadatos           json.RawMessage `json:"metadatos,omitempty"`
	Configuracion       json.RawMessage `json:"configuracion,omitempty"`
	FechaCreacion       string          `json:"fecha_creacion,omitempty"`
}

// ActiveAt reports whether the role is usable at t: active, inside its
// validity window, on an enabled weekday and inside its hour range.
// Missing bounds are open.
func (r Role) ActiveAt(t time.Time) bool {
	if !r.Activo {
		return false
	}

	day := t.Format(dateLayout)
	if r.FechaInicioVigencia != nil && *r.FechaInicioVigencia != "" && day < *r.FechaInicioVigencia {
		return false
	}
	if r.FechaFinVigencia != nil && *r.FechaFinVigencia != "" && day > *r.FechaFinVigencia {
		return false
	}

	if len(r.DiasSemana) == 7 {
		// time.Weekday starts on Sunday; dias_semana starts on Monday.
		idx := (int(t.Weekday()) + 6) % 7
		if r.DiasSemana[idx] != '1' {
			return false
		}
	}

	clock := t.Format("15:04:05")
	if r.HoraInicio != nil && *r.HoraInicio != "" && clock < normalizeClock(*r.HoraInicio) {
		return false
	}
	if r.HoraFin != nil && *r.HoraFin != "" && clock > normalizeClock(*r.HoraFin) {
		return false
	}
	return true
}

// normalizeClock turns "HH:MM" into "HH:MM:SS" so string comparison works.
func normalizeClock(s string) string {
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}

// HierarchyNode is one node of GET /api/roles/roles/jerarquia/.
type HierarchyNode struct {
	ID              backend.ID      `json:"id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	NivelJerarquico int             `json:"nivel_jerarquico"`
	Activo          bool            `json:"activo"`
	EsSistema       bool            `json:"es_sistema"`
	Hijos           []HierarchyNode `json:"hijos"`
}

// UnmarshalJSON also accepts "children" for the child list, which some
// backend versions emit instead of "hijos".
func (n *HierarchyNode) UnmarshalJSON(data []byte) error {
	type plain HierarchyNode
	aux := struct {
		*plain
		Children []HierarchyNode `json:"children"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(n.Hijos) == 0 && len(aux.Children) > 0 {
		n.Hijos = aux.Children
	}
	return nil
}
