package legalparamerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrLegalParameterNotFound = apperror.New(
		apperror.CodeNotFound,
		"Parámetro legal no encontrado",
		http.StatusNotFound,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"La fecha fin de vigencia no puede ser anterior a la fecha de inicio",
		http.StatusBadRequest,
	)

	ErrTotalExceeded = apperror.New(
		apperror.CodeValidation,
		"La suma de porcentajes no puede superar 100",
		http.StatusBadRequest,
	)

	ErrOverlappingValidity = apperror.New(
		apperror.CodeConflict,
		"Ya existe un parámetro con el mismo código vigente en ese periodo",
		http.StatusConflict,
	)
)
