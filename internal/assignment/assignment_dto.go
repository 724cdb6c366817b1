package assignment

import "cortesec-admin/internal/shared/listing"

type CreateAssignmentRequest struct {
	Usuario       string  `json:"usuario" binding:"required"`
	Rol           string  `json:"rol" binding:"required"`
	Justificacion string  `json:"justificacion,omitempty" binding:"max=1000"`
	FechaFin      *string `json:"fecha_fin,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type ApproveRequest struct {
	Observaciones string `json:"observaciones,omitempty" binding:"max=1000"`
}

// MotiveRequest is the body of rechazar and revocar.
type MotiveRequest struct {
	Motivo string `json:"motivo" binding:"max=1000"`
}

type Filter struct {
	listing.Query
	Estado  string
	Usuario string
	Rol     string
}

type AssignmentResponse struct {
	Assignment
	AvailableActions []string `json:"acciones_disponibles"`
	Terminal         bool     `json:"terminal"`
}

// CreatePreview tells the form what will happen before submitting.
type CreatePreview struct {
	Rol                string `json:"rol"`
	RolNombre          string `json:"rol_nombre"`
	RequiereAprobacion bool   `json:"requiere_aprobacion"`
	EstadoEsperado     string `json:"estado_esperado"`
	Aviso              string `json:"aviso,omitempty"`
}

// MutationResult carries the backend answer of a mutation together with
// the re-fetched list.
type MutationResult struct {
	Asignacion     AssignmentResponse   `json:"asignacion"`
	EstadoEsperado string               `json:"estado_esperado,omitempty"`
	Aviso          string               `json:"aviso,omitempty"`
	Asignaciones   []AssignmentResponse `json:"asignaciones"`
	Resumen        Summary              `json:"resumen"`
	// Refrescado is false when the list could not be fetched again.
	Refrescado bool `json:"refrescado"`
}

type Summary struct {
	Total     int            `json:"total"`
	PorEstado map[string]int `json:"por_estado"`
}
