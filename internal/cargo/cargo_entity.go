package cargo

import (
	"encoding/json"

	"cortesec-admin/internal/shared/backend"
)

type Cargo struct {
	ID          backend.ID   `json:"id"`
	Codigo      string       `json:"codigo"`
	Nombre      string       `json:"nombre"`
	Descripcion string       `json:"descripcion"`
	SalarioBase *json.Number `json:"salario_base"`
	Activo      bool         `json:"activo"`
}
