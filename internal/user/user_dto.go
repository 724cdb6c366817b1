package user

import "cortesec-admin/internal/shared/backend"

type CreateUserRequest struct {
	Username  string      `json:"username" binding:"required,max=150"`
	Email     string      `json:"email" binding:"required,email"`
	FirstName string      `json:"first_name" binding:"required,max=150"`
	LastName  string      `json:"last_name" binding:"required,max=150"`
	Documento string      `json:"documento" binding:"omitempty,max=20"`
	Telefono  string      `json:"telefono" binding:"omitempty,max=20"`
	Cargo     *backend.ID `json:"cargo"`
	Password  string      `json:"password" binding:"required,min=8"`
	IsActive  *bool       `json:"is_active"`
}

type UpdateUserRequest struct {
	Username  string      `json:"username" binding:"required,max=150"`
	Email     string      `json:"email" binding:"required,email"`
	FirstName string      `json:"first_name" binding:"required,max=150"`
	LastName  string      `json:"last_name" binding:"required,max=150"`
	Documento string      `json:"documento" binding:"omitempty,max=20"`
	Telefono  string      `json:"telefono" binding:"omitempty,max=20"`
	Cargo     *backend.ID `json:"cargo"`
	IsActive  *bool       `json:"is_active"`
}

type UpdateUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type UserResponse struct {
	User
	FullName string `json:"full_name"`
}

// UserOption is the compact row used by the assignment form selector.
type UserOption struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type ListQuery struct {
	Search   string
	Page     int
	PageSize int
	Active   *bool
	SortBy   string
	SortDir  string
}
