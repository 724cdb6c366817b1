package parametererrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrParameterNotFound = apperror.New(
		apperror.CodeNotFound,
		"Parámetro no encontrado",
		http.StatusNotFound,
	)

	ErrSystemParameterDelete = apperror.New(
		apperror.CodeSystemProtected,
		"Los parámetros del sistema no pueden eliminarse",
		http.StatusConflict,
	)

	ErrSystemParameterImmutable = apperror.New(
		apperror.CodeSystemProtected,
		"El código y el tipo de dato de un parámetro del sistema no pueden cambiarse",
		http.StatusConflict,
	)

	ErrSystemParameterDeactivate = apperror.New(
		apperror.CodeSystemProtected,
		"Los parámetros del sistema no pueden desactivarse",
		http.StatusConflict,
	)

	ErrInvalidValue = apperror.New(
		apperror.CodeValidation,
		"El valor no corresponde al tipo de dato",
		http.StatusBadRequest,
	)

	ErrUnknownParameter = apperror.New(
		apperror.CodeInvalidInput,
		"El parámetro no pertenece a la categoría",
		http.StatusBadRequest,
	)
)
