package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"No tiene permisos para acceder a este recurso",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Ocurrió un error inesperado",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Se requiere autenticación",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Los datos enviados no son válidos",
		http.StatusBadRequest,
	)

	ErrSystemProtected = New(
		CodeSystemProtected,
		"El registro es del sistema y no puede eliminarse ni desactivarse",
		http.StatusConflict,
	)

	ErrBackendUnavailable = New(
		CodeServiceUnavailable,
		"Error al comunicarse con el servidor",
		http.StatusServiceUnavailable,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s es obligatorio", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s no es válido", field),
		http.StatusBadRequest,
	)
}
