package modulo

import "cortesec-admin/internal/shared/backend"

// Module is an application area that permissions are granted on.
type Module struct {
	ID          backend.ID `json:"id"`
	Codigo      string     `json:"codigo"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Icono       string     `json:"icono"`
	Orden       int        `json:"orden"`
	Activo      bool       `json:"activo"`
}
