package roletype

type RoleTypeRequest struct {
	Codigo      string `json:"codigo" binding:"required,codigo"`
	Nombre      string `json:"nombre" binding:"required,max=100"`
	Descripcion string `json:"descripcion" binding:"max=500"`
	Activo      *bool  `json:"activo"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}
