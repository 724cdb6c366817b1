package location

import "cortesec-admin/internal/shared/listing"

type DepartmentRequest struct {
	Codigo string `json:"codigo" binding:"required,alphanum,max=10"`
	Nombre string `json:"nombre" binding:"required,max=100"`
	Activo *bool  `json:"activo"`
}

type MunicipalityRequest struct {
	Codigo       string `json:"codigo" binding:"required,alphanum,max=10"`
	Nombre       string `json:"nombre" binding:"required,max=100"`
	Departamento string `json:"departamento" binding:"required"`
	Activo       *bool  `json:"activo"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}

// MunicipalityQuery narrows the municipality list to one department.
type MunicipalityQuery struct {
	listing.Query
	Departamento string
}

type RowIssue struct {
	Hoja    string `json:"hoja"`
	Fila    int    `json:"fila"`
	Columna string `json:"columna,omitempty"`
	Mensaje string `json:"mensaje"`
}

// ValidationReport is the local check of a workbook before it is sent
// to the backend import.
type ValidationReport struct {
	Valido        bool       `json:"valido"`
	Departamentos int        `json:"departamentos"`
	Municipios    int        `json:"municipios"`
	Errores       []RowIssue `json:"errores"`
	Truncado      bool       `json:"truncado,omitempty"`
}
