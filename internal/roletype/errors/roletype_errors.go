package roletypeerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrRoleTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tipo de rol no encontrado",
		http.StatusNotFound,
	)
	ErrSystemRoleTypeDelete = apperror.New(
		apperror.CodeSystemProtected,
		"Los tipos de rol del sistema no pueden eliminarse",
		http.StatusConflict,
	)
	ErrSystemRoleTypeDeactivate = apperror.New(
		apperror.CodeSystemProtected,
		"Los tipos de rol del sistema no pueden desactivarse",
		http.StatusConflict,
	)
	ErrSystemCodeImmutable = apperror.New(
		apperror.CodeSystemProtected,
		"El código de un tipo de rol del sistema no puede cambiarse",
		http.StatusConflict,
	)
)
