package legalparam

import (
	"time"

	"cortesec-admin/internal/shared/listing"
)

type LegalParameterRequest struct {
	Codigo              string   `json:"codigo" binding:"required,codigo"`
	Nombre              string   `json:"nombre" binding:"required,max=150"`
	Descripcion         string   `json:"descripcion" binding:"max=500"`
	PorcentajeEmpleado  float64  `json:"porcentaje_empleado" binding:"gte=0,lte=100"`
	PorcentajeEmpleador float64  `json:"porcentaje_empleador" binding:"gte=0,lte=100"`
	ValorFijo           *float64 `json:"valor_fijo" binding:"omitempty,gte=0"`
	FechaInicioVigencia string   `json:"fecha_inicio_vigencia" binding:"required,datetime=2006-01-02"`
	FechaFinVigencia    *string  `json:"fecha_fin_vigencia" binding:"omitempty,datetime=2006-01-02"`
	Activo              *bool    `json:"activo"`
}

// backendPayload is the body sent to the backend, with the total
// computed by the console.
type backendPayload struct {
	Codigo              string   `json:"codigo"`
	Nombre              string   `json:"nombre"`
	Descripcion         string   `json:"descripcion"`
	PorcentajeEmpleado  string   `json:"porcentaje_empleado"`
	PorcentajeEmpleador string   `json:"porcentaje_empleador"`
	PorcentajeTotal     string   `json:"porcentaje_total"`
	ValorFijo           *float64 `json:"valor_fijo"`
	FechaInicioVigencia string   `json:"fecha_inicio_vigencia"`
	FechaFinVigencia    *string  `json:"fecha_fin_vigencia"`
	Activo              bool     `json:"activo"`
}

type ActiveRequest struct {
	Activo bool `json:"activo"`
}

// TotalRequest backs the form's live total preview.
type TotalRequest struct {
	PorcentajeEmpleado  float64 `json:"porcentaje_empleado" form:"porcentaje_empleado" binding:"gte=0,lte=100"`
	PorcentajeEmpleador float64 `json:"porcentaje_empleador" form:"porcentaje_empleador" binding:"gte=0,lte=100"`
}

type TotalResponse struct {
	PorcentajeTotal string `json:"porcentaje_total"`
}

type Filter struct {
	listing.Query
	// Vigente keeps only parameters in force on Fecha when set.
	Vigente *bool
	Fecha   time.Time
}

type LegalParameterResponse struct {
	LegalParameter
	Vigente bool `json:"vigente"`
}
