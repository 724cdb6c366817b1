package locationerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Departamento no encontrado",
		http.StatusNotFound,
	)

	ErrMunicipalityNotFound = apperror.New(
		apperror.CodeNotFound,
		"Municipio no encontrado",
		http.StatusNotFound,
	)

	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"El departamento tiene municipios asociados",
		http.StatusConflict,
	)

	ErrDepartmentInactive = apperror.New(
		apperror.CodeInvalidState,
		"El departamento seleccionado está inactivo",
		http.StatusBadRequest,
	)

	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Debe adjuntar un archivo",
		http.StatusBadRequest,
	)

	ErrUnsupportedFile = apperror.New(
		apperror.CodeInvalidInput,
		"Solo se admiten archivos .xlsx",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"El archivo supera el tamaño máximo permitido",
		http.StatusRequestEntityTooLarge,
	)

	ErrUnreadableWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"No se pudo leer el archivo de Excel",
		http.StatusBadRequest,
	)

	ErrInvalidWorkbook = apperror.New(
		apperror.CodeValidation,
		"El archivo contiene errores",
		http.StatusBadRequest,
	)
)
