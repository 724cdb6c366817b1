package cargo

type CargoRequest struct {
	Codigo      string   `json:"codigo" binding:"required,codigo"`
	Nombre      string   `json:"nombre" binding:"required,max=100"`
	Descripcion string   `json:"descripcion" binding:"max=500"`
	SalarioBase *float64 `json:"salario_base" binding:"omitempty,gte=0"`
	Activo      *bool    `json:"activo"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}

// CargoOption is the compact row used by the user form selector.
type CargoOption struct {
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}
