package location

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetDepartments    = "Departamentos"
	SheetMunicipalities = "Municipios"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	TemplateName    = "plantilla_ubicaciones.xlsx"

	maxReportedIssues = 200
	maxNameLen        = 100
)

var (
	departmentHeaders   = []string{"codigo", "nombre"}
	municipalityHeaders = []string{"codigo", "nombre", "codigo_departamento"}

	locationCodePattern = regexp.MustCompile(`^[0-9A-Za-z]{1,10}$`)
)

// BuildTemplate returns an xlsx workbook with one sheet per level. The
// department sheet is prefilled with depts so municipality rows can
// reference existing codes.
func BuildTemplate(depts []Department) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDepartments); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetMunicipalities); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	if err := writeHeader(f, SheetDepartments, departmentHeaders, headerStyle); err != nil {
		return nil, err
	}
	if err := writeHeader(f, SheetMunicipalities, municipalityHeaders, headerStyle); err != nil {
		return nil, err
	}

	for i, d := range depts {
		row := i + 2
		if err := f.SetCellStr(SheetDepartments, fmt.Sprintf("A%d", row), d.Codigo); err != nil {
			return nil, err
		}
		if err := f.SetCellStr(SheetDepartments, fmt.Sprintf("B%d", row), d.Nombre); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 24); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWorkbook checks a bulk-load workbook row by row. known holds the
// departments already registered; municipality rows may reference those
// or departments declared in the same file.
func ValidateWorkbook(r io.Reader, known []Department) (ValidationReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ValidationReport{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	v := &validator{report: ValidationReport{Errores: []RowIssue{}}}

	deptCodes := make(map[string]bool, len(known))
	for _, d := range known {
		deptCodes[strings.ToUpper(d.Codigo)] = true
	}

	if rows, ok := v.readSheet(f, SheetDepartments, departmentHeaders); ok {
		seen := make(map[string]int)
		for i, row := range rows {
			line := i + 2
			if blankRow(row) {
				continue
			}
			codigo := strings.ToUpper(cell(row, 0))
			if v.checkCode(SheetDepartments, line, codigo) {
				if first, dup := seen[codigo]; dup {
					v.add(SheetDepartments, line, "codigo", fmt.Sprintf("Código duplicado, ya aparece en la fila %d", first))
				} else {
					seen[codigo] = line
					deptCodes[codigo] = true
				}
			}
			v.checkName(SheetDepartments, line, cell(row, 1))
			v.report.Departamentos++
		}
	}

	if rows, ok := v.readSheet(f, SheetMunicipalities, municipalityHeaders); ok {
		seen := make(map[string]int)
		for i, row := range rows {
			line := i + 2
			if blankRow(row) {
				continue
			}
			codigo := strings.ToUpper(cell(row, 0))
			if v.checkCode(SheetMunicipalities, line, codigo) {
				if first, dup := seen[codigo]; dup {
					v.add(SheetMunicipalities, line, "codigo", fmt.Sprintf("Código duplicado, ya aparece en la fila %d", first))
				} else {
					seen[codigo] = line
				}
			}
			v.checkName(SheetMunicipalities, line, cell(row, 1))

			dept := strings.ToUpper(cell(row, 2))
			switch {
			case dept == "":
				v.add(SheetMunicipalities, line, "codigo_departamento", "Campo requerido")
			case !deptCodes[dept]:
				v.add(SheetMunicipalities, line, "codigo_departamento", fmt.Sprintf("Departamento %s no existe", dept))
			}
			v.report.Municipios++
		}
	}

	v.report.Valido = len(v.report.Errores) == 0 && !v.report.Truncado
	return v.report, nil
}

type validator struct {
	report ValidationReport
}

func (v *validator) add(sheet string, line int, column, msg string) {
	if len(v.report.Errores) >= maxReportedIssues {
		v.report.Truncado = true
		return
	}
	v.report.Errores = append(v.report.Errores, RowIssue{Hoja: sheet, Fila: line, Columna: column, Mensaje: msg})
}

// readSheet returns the data rows of sheet after checking its header row.
func (v *validator) readSheet(f *excelize.File, sheet string, headers []string) ([][]string, bool) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		v.add(sheet, 0, "", "Hoja requerida no encontrada")
		return nil, false
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		v.add(sheet, 0, "", "No se pudo leer la hoja")
		return nil, false
	}
	if len(rows) == 0 {
		v.add(sheet, 1, "", "La hoja no tiene encabezados")
		return nil, false
	}

	ok := true
	for i, h := range headers {
		if strings.ToLower(cell(rows[0], i)) != h {
			v.add(sheet, 1, h, fmt.Sprintf("Encabezado esperado: %s", h))
			ok = false
		}
	}
	if !ok {
		return nil, false
	}
	return rows[1:], true
}

func (v *validator) checkCode(sheet string, line int, codigo string) bool {
	switch {
	case codigo == "":
		v.add(sheet, line, "codigo", "Campo requerido")
		return false
	case !locationCodePattern.MatchString(codigo):
		v.add(sheet, line, "codigo", "Solo letras y números, máximo 10 caracteres")
		return false
	}
	return true
}

func (v *validator) checkName(sheet string, line int, nombre string) {
	switch {
	case nombre == "":
		v.add(sheet, line, "nombre", "Campo requerido")
	case len([]rune(nombre)) > maxNameLen:
		v.add(sheet, line, "nombre", fmt.Sprintf("Máximo %d caracteres", maxNameLen))
	}
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
