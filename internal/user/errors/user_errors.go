package usererrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuario no encontrado",
		http.StatusNotFound,
	)

	ErrSelfDeactivation = apperror.New(
		apperror.CodeInvalidState,
		"No puede desactivar su propio usuario",
		http.StatusBadRequest,
	)

	ErrSelfDelete = apperror.New(
		apperror.CodeInvalidState,
		"No puede eliminar su propio usuario",
		http.StatusBadRequest,
	)

	ErrInvalidSort = apperror.New(
		apperror.CodeInvalidInput,
		"Campo de ordenamiento no permitido",
		http.StatusBadRequest,
	)
)
