package assignmenterrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asignación no encontrada",
		http.StatusNotFound,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeValidation,
		"El rol seleccionado no existe",
		http.StatusBadRequest,
	)
	ErrRoleInactive = apperror.New(
		apperror.CodeValidation,
		"El rol seleccionado está inactivo",
		http.StatusBadRequest,
	)
	ErrRejectMotiveRequired = apperror.New(
		apperror.CodeValidation,
		"Debe indicar el motivo del rechazo",
		http.StatusBadRequest,
	)
	ErrRevokeMotiveRequired = apperror.New(
		apperror.CodeValidation,
		"Debe indicar el motivo de la revocación",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeValidation,
		"La fecha de fin no puede ser anterior a hoy",
		http.StatusBadRequest,
	)
	ErrInvalidState = apperror.New(
		apperror.CodeValidation,
		"Estado de asignación desconocido",
		http.StatusBadRequest,
	)
)
