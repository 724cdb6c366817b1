package cargoerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrCargoNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cargo no encontrado",
		http.StatusNotFound,
	)

	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"Ya existe un cargo con ese código",
		http.StatusConflict,
	)
)
