package location

import "cortesec-admin/internal/shared/backend"

type Department struct {
	ID     backend.ID `json:"id"`
	Codigo string     `json:"codigo"`
	Nombre string     `json:"nombre"`
	Activo bool       `json:"activo"`
}

type Municipality struct {
	ID                 backend.ID `json:"id"`
	Codigo             string     `json:"codigo"`
	Nombre             string     `json:"nombre"`
	Departamento       backend.ID `json:"departamento"`
	DepartamentoNombre string     `json:"departamento_nombre"`
	Activo             bool       `json:"activo"`
}

// ImportResult is the backend answer to a bulk load.
type ImportResult struct {
	Mensaje       string   `json:"mensaje"`
	Departamentos int      `json:"departamentos"`
	Municipios    int      `json:"municipios"`
	Creados       int      `json:"creados"`
	Actualizados  int      `json:"actualizados"`
	Errores       []string `json:"errores"`
}
