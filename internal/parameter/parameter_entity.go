package parameter

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cortesec-admin/internal/shared/backend"
)

const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeDecimal = "decimal"
	TypeBoolean = "boolean"
	TypeDate    = "date"
	TypeJSON    = "json"

	CategoryEmail     = "EMAIL"
	CategorySecurity  = "SEGURIDAD"
	CategoryGeneral   = "GENERAL"
	maxStringValueLen = 1000
)

// Types lists the accepted tipo_dato values.
var Types = []string{TypeString, TypeInteger, TypeDecimal, TypeBoolean, TypeDate, TypeJSON}

type Parameter struct {
	ID          backend.ID `json:"id"`
	Codigo      string     `json:"codigo"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Categoria   string     `json:"categoria"`
	TipoDato    string     `json:"tipo_dato"`
	Valor       string     `json:"valor"`
	EsSistema   bool       `json:"es_sistema"`
	Activo      bool       `json:"activo"`
}

// Typed returns the value parsed according to TipoDato.
func (p Parameter) Typed() (any, error) {
	return ParseValue(p.TipoDato, p.Valor)
}

// NormalizeValue trims raw and canonicalizes booleans.
func NormalizeValue(tipo, raw string) string {
	v := strings.TrimSpace(raw)
	if tipo == TypeBoolean {
		v = strings.ToLower(v)
	}
	return v
}

// ParseValue converts raw into the Go value for tipo. The date type
// uses the ISO layout 2006-01-02.
func ParseValue(tipo, raw string) (any, error) {
	v := NormalizeValue(tipo, raw)

	switch tipo {
	case TypeString:
		if len([]rune(v)) > maxStringValueLen {
			return nil, fmt.Errorf("máximo %d caracteres", maxStringValueLen)
		}
		return v, nil
	case TypeInteger:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.New("debe ser un número entero")
		}
		return n, nil
	case TypeDecimal:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("debe ser un número decimal")
		}
		return f, nil
	case TypeBoolean:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, errors.New("debe ser true o false")
	case TypeDate:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return nil, errors.New("debe ser una fecha AAAA-MM-DD")
		}
		return t, nil
	case TypeJSON:
		var out any
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil, errors.New("debe ser un JSON válido")
		}
		return out, nil
	}
	return nil, fmt.Errorf("tipo de dato %q no soportado", tipo)
}
