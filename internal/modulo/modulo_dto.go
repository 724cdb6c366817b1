package modulo

type ModuleRequest struct {
	Codigo      string `json:"codigo" binding:"required,codigo"`
	Nombre      string `json:"nombre" binding:"required,max=100"`
	Descripcion string `json:"descripcion" binding:"max=500"`
	Icono       string `json:"icono" binding:"max=50"`
	Orden       int    `json:"orden" binding:"gte=0,lte=9999"`
	Activo      *bool  `json:"activo"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}
