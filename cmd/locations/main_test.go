package main

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"cortesec-admin/internal/location"
	"cortesec-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "boom", describeError(errors.New("boom")))
	})

	t.Run("backend field errors", func(t *testing.T) {
		err := apperror.New(apperror.CodeValidation, "Revise los campos marcados", http.StatusBadRequest).
			WithDetails(map[string]any{"fields": map[string][]string{
				"nombre": {"Este campo es requerido."},
				"codigo": {"Ya existe."},
			}})

		assert.Equal(t,
			"VALIDATION_ERROR: Revise los campos marcados (codigo: Ya existe.; nombre: Este campo es requerido.)",
			describeError(err))
	})
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, location.ValidationReport{
		Valido:        false,
		Departamentos: 2,
		Municipios:    5,
		Errores: []location.RowIssue{
			{Hoja: location.SheetMunicipalities, Fila: 4, Columna: "departamento", Mensaje: "Departamento 99 no existe"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "archivo con errores: departamentos=2 municipios=5")
	assert.Contains(t, out, "Municipios fila 4 [departamento]: Departamento 99 no existe")
}
