package roleerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rol no encontrado",
		http.StatusNotFound,
	)
	ErrSystemRoleDelete = apperror.New(
		apperror.CodeSystemProtected,
		"Los roles del sistema no pueden eliminarse",
		http.StatusConflict,
	)
	ErrSystemRoleDeactivate = apperror.New(
		apperror.CodeSystemProtected,
		"Los roles del sistema no pueden desactivarse",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"La fecha de fin de vigencia debe ser posterior a la de inicio",
		http.StatusBadRequest,
	)
	ErrInvalidScheduleRange = apperror.New(
		apperror.CodeValidation,
		"La hora de inicio debe ser anterior a la hora de fin",
		http.StatusBadRequest,
	)
	ErrSelfParent = apperror.New(
		apperror.CodeValidation,
		"Un rol no puede ser su propio rol padre",
		http.StatusBadRequest,
	)
	ErrInvalidJSON = apperror.New(
		apperror.CodeValidation,
		"Metadatos y configuración deben ser objetos JSON",
		http.StatusBadRequest,
	)
	ErrNodeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Debe indicar el nodo a expandir",
		http.StatusBadRequest,
	)
)
