package user

import "cortesec-admin/internal/shared/backend"

// User is the backend representation of /api/usuarios/usuarios/.
type User struct {
	ID          backend.ID  `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Documento   string      `json:"documento"`
	Telefono    string      `json:"telefono"`
	Cargo       *backend.ID `json:"cargo"`
	CargoNombre string      `json:"cargo_nombre,omitempty"`
	IsActive    bool        `json:"is_active"`
	DateJoined  string      `json:"date_joined,omitempty"`
	LastLogin   *string     `json:"last_login"`
}

func (u User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
