package moduloerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var ErrModuleNotFound = apperror.New(
	apperror.CodeNotFound,
	"Módulo no encontrado",
	http.StatusNotFound,
)
