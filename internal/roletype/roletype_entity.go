package roletype

import "cortesec-admin/internal/shared/backend"

type RoleType struct {
	ID          backend.ID `json:"id"`
	Codigo      string     `json:"codigo"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Activo      bool       `json:"activo"`
	EsSistema   bool       `json:"es_sistema"`
}
