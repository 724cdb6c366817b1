package role

import (
	"encoding/json"

	"cortesec-admin/internal/shared/backend"
)

type RoleRequest struct {
	Codigo              string          `json:"codigo" binding:"required,codigo"`
	Nombre              string          `json:"nombre" binding:"required,max=100"`
	Descripcion         string          `json:"descripcion" binding:"max=500"`
	TipoRol             *backend.ID     `json:"tipo_rol"`
	RolPadre            *backend.ID     `json:"rol_padre"`
	HeredaPermisos      bool            `json:"hereda_permisos"`
	RequiereAprobacion  bool            `json:"requiere_aprobacion"`
	Activo              *bool           `json:"activo"`
	FechaInicioVigencia *string         `json:"fecha_inicio_vigencia" binding:"omitempty,datetime=2006-01-02"`
	FechaFinVigencia    *string         `json:"fecha_fin_vigencia" binding:"omitempty,datetime=2006-01-02"`
	HoraInicio          *string         `json:"hora_inicio" binding:"omitempty,hhmm"`
	HoraFin             *string         `json:"hora_fin" binding:"omitempty,hhmm"`
	DiasSemana          string          `json:"dias_semana" binding:"omitempty,dias_semana"`
	Metadatos           json.RawMessage `json:"metadatos,omitempty"`
	Configuracion       json.RawMessage `json:"configuracion,omitempty"`
}

// RoleResponse is a backend role plus the computed schedule badge.
type RoleResponse struct {
	Role
	EnHorario bool `json:"en_horario"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}

// NodeView is a hierarchy node decorated for the tree widget.
type NodeView struct {
	ID              string     `json:"id"`
	Codigo          string     `json:"codigo"`
	Nombre          string     `json:"nombre"`
	NivelJerarquico int        `json:"nivel_jerarquico"`
	Activo          bool       `json:"activo"`
	EsSistema       bool       `json:"es_sistema"`
	HasChildren     bool       `json:"has_children"`
	Expanded        bool       `json:"expanded"`
	Hijos           []NodeView `json:"hijos"`
}

// VisibleRow is one line of the flattened tree.
type VisibleRow struct {
	ID              string `json:"id"`
	Codigo          string `json:"codigo"`
	Nombre          string `json:"nombre"`
	Depth           int    `json:"depth"`
	NivelJerarquico int    `json:"nivel_jerarquico"`
	Activo          bool   `json:"activo"`
	HasChildren     bool   `json:"has_children"`
	Expanded        bool   `json:"expanded"`
}

type HierarchyView struct {
	Tree     []NodeView   `json:"tree"`
	Rows     []VisibleRow `json:"rows"`
	Expanded []string     `json:"expanded"`
	Total    int          `json:"total"`
}
