package location_test

import (
	"bytes"
	"testing"

	"cortesec-admin/internal/location"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, depts, munis [][]string) []byte {
	t.Helper()

	content, err := location.BuildTemplate(nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	fill := func(sheet string, rows [][]string) {
		for i, row := range rows {
			for j, v := range row {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
				assert.NoError(t, f.SetCellStr(sheet, cell, v))
			}
		}
	}
	fill(location.SheetDepartments, depts)
	fill(location.SheetMunicipalities, munis)

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestBuildTemplate_PrefillsDepartments(t *testing.T) {
	content, err := location.BuildTemplate([]location.Department{{ID: "1", Codigo: "05", Nombre: "Antioquia"}})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{location.SheetDepartments, location.SheetMunicipalities}, f.GetSheetList())

	rows, err := f.GetRows(location.SheetDepartments)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"codigo", "nombre"}, {"05", "Antioquia"}}, rows)

	header, err := f.GetRows(location.SheetMunicipalities)
	assert.NoError(t, err)
	assert.Equal(t, []string{"codigo", "nombre", "codigo_departamento"}, header[0])
}

func TestValidateWorkbook(t *testing.T) {
	known := []location.Department{{ID: "1", Codigo: "05", Nombre: "Antioquia"}}

	t.Run("valid file", func(t *testing.T) {
		content := workbook(t,
			[][]string{{"08", "Atlántico"}},
			[][]string{{"05001", "Medellín", "05"}, {"08001", "Barranquilla", "08"}},
		)

		report, err := location.ValidateWorkbook(bytes.NewReader(content), known)

		assert.NoError(t, err)
		assert.True(t, report.Valido)
		assert.Equal(t, 1, report.Departamentos)
		assert.Equal(t, 2, report.Municipios)
		assert.Empty(t, report.Errores)
	})

	t.Run("row errors are reported with sheet and line", func(t *testing.T) {
		content := workbook(t,
			[][]string{{"08", "Atlántico"}, {"08", "Duplicado"}, {"", "Sin código"}},
			[][]string{{"99001", "Huérfano", "99"}, {"05-01", "Código raro", "05"}, {"05002", "", "05"}},
		)

		report, err := location.ValidateWorkbook(bytes.NewReader(content), known)

		assert.NoError(t, err)
		assert.False(t, report.Valido)
		assert.Contains(t, report.Errores, location.RowIssue{Hoja: location.SheetDepartments, Fila: 3, Columna: "codigo", Mensaje: "Código duplicado, ya aparece en la fila 2"})
		assert.Contains(t, report.Errores, location.RowIssue{Hoja: location.SheetDepartments, Fila: 4, Columna: "codigo", Mensaje: "Campo requerido"})
		assert.Contains(t, report.Errores, location.RowIssue{Hoja: location.SheetMunicipalities, Fila: 2, Columna: "codigo_departamento", Mensaje: "Departamento 99 no existe"})
		assert.Contains(t, report.Errores, location.RowIssue{Hoja: location.SheetMunicipalities, Fila: 3, Columna: "codigo", Mensaje: "Solo letras y números, máximo 10 caracteres"})
		assert.Contains(t, report.Errores, location.RowIssue{Hoja: location.SheetMunicipalities, Fila: 4, Columna: "nombre", Mensaje: "Campo requerido"})
	})

	t.Run("missing sheet", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		buf, err := f.WriteToBuffer()
		assert.NoError(t, err)

		report, err := location.ValidateWorkbook(bytes.NewReader(buf.Bytes()), known)

		assert.NoError(t, err)
		assert.False(t, report.Valido)
		assert.Len(t, report.Errores, 2)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := location.ValidateWorkbook(bytes.NewReader([]byte("codigo,nombre")), known)
		assert.Error(t, err)
	})
}
