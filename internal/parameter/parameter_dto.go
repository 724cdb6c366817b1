package parameter

import "cortesec-admin/internal/shared/listing"

type ParameterRequest struct {
	Codigo      string `json:"codigo" binding:"required,codigo"`
	Nombre      string `json:"nombre" binding:"required,max=150"`
	Descripcion string `json:"descripcion" binding:"max=500"`
	Categoria   string `json:"categoria" binding:"required,max=50"`
	TipoDato    string `json:"tipo_dato" binding:"required,oneof=string integer decimal boolean date json"`
	Valor       string `json:"valor"`
	Activo      *bool  `json:"activo"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}

type ValueRequest struct {
	Valor string `json:"valor"`
}

// SettingsRequest saves a settings page: codigo -> new value.
type SettingsRequest struct {
	Valores map[string]string `json:"valores" binding:"required,min=1"`
}

type Filter struct {
	listing.Query
	Categoria string
	TipoDato  string
}

type ParameterResponse struct {
	Parameter
	ValorTipado any `json:"valor_tipado"`
}

// CategoryGroup is one settings page section.
type CategoryGroup struct {
	Categoria  string              `json:"categoria"`
	Parametros []ParameterResponse `json:"parametros"`
}
