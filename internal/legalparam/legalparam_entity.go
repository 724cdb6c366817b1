package legalparam

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"cortesec-admin/internal/shared/backend"
)

// LegalParameter is a payroll contribution rule with a validity window.
type LegalParameter struct {
	ID                  backend.ID   `json:"id"`
	Codigo              string       `json:"codigo"`
	Nombre              string       `json:"nombre"`
	Descripcion         string       `json:"descripcion"`
	PorcentajeEmpleado  json.Number  `json:"porcentaje_empleado"`
	PorcentajeEmpleador json.Number  `json:"porcentaje_empleador"`
	PorcentajeTotal     json.Number  `json:"porcentaje_total"`
	ValorFijo           *json.Number `json:"valor_fijo"`
	FechaInicioVigencia string       `json:"fecha_inicio_vigencia"`
	FechaFinVigencia    *string      `json:"fecha_fin_vigencia"`
	Activo              bool         `json:"activo"`
}

// VigenteEn reports whether the parameter is active and its validity
// window covers day. An open end date never expires.
func (p LegalParameter) VigenteEn(day time.Time) bool {
	if !p.Activo {
		return false
	}
	from, to, err := p.window()
	if err != nil {
		return false
	}
	d := dateOf(day)
	if d.Before(from) {
		return false
	}
	return to.IsZero() || !d.After(to)
}

func (p LegalParameter) window() (time.Time, time.Time, error) {
	return parseWindow(p.FechaInicioVigencia, p.FechaFinVigencia)
}

func parseWindow(start string, end *string) (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	var to time.Time
	if end != nil && *end != "" {
		if to, err = time.Parse(time.DateOnly, *end); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

// overlaps reports whether [aFrom, aTo] and [bFrom, bTo] share a day. A
// zero end is open.
func overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	if !aTo.IsZero() && aTo.Before(bFrom) {
		return false
	}
	if !bTo.IsZero() && bTo.Before(aFrom) {
		return false
	}
	return true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TotalPercent sums the two shares at three-decimal precision, so
// 4 + 8.5 yields "12.500".
func TotalPercent(empleado, empleador float64) string {
	milli := math.Round(empleado*1000) + math.Round(empleador*1000)
	return fmt.Sprintf("%.3f", milli/1000)
}
