package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario. CompanyID solo es efectivo
// para "Super Admin".
type CreateUserRequest struct {
	PersonID  string  `json:"personId" validate:"required,uuid4"`
	CompanyID string  `json:"companyId" validate:"omitempty,uuid4"`
	RoleID    string  `json:"roleId" validate:"required,uuid4"`
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Password  string  `json:"password" validate:"required,min=6,max=72"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// UpdateUserRequest entrada de actualización parcial de un usuario.
type UpdateUserRequest struct {
	PersonID *string `json:"personId" validate:"omitempty,uuid4"`
	RoleID   *string `json:"roleId" validate:"omitempty,uuid4"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// ListUsersQuery filtros de listado de usuarios.
type ListUsersQuery struct {
	ListQuery
	CompanyID      string `query:"companyId"`
	RoleID         string `query:"roleId"`
	IncludeDetails bool   `query:"includeDetails"`
}

// UserResponse salida de un usuario. El hash de contraseña nunca viaja.
type UserResponse struct {
	ID              string     `json:"id"`
	PersonID        string     `json:"personId"`
	CompanyID       string     `json:"companyId"`
	RoleID          string     `json:"roleId"`
	Username        string     `json:"username"`
	Email           *string    `json:"email"`
	IsActive        bool       `json:"isActive"`
	LastLogin       *time.Time `json:"lastLogin"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	PersonFirstName *string    `json:"personFirstName,omitempty"`
	PersonLastName  *string    `json:"personLastName,omitempty"`
	CompanyName     *string    `json:"companyName,omitempty"`
	RoleName        *string    `json:"roleName,omitempty"`
}

// NewUserResponse mapea la entidad a su representación pública.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		PersonID:        u.PersonID,
		CompanyID:       u.CompanyID,
		RoleID:          u.RoleID,
		Username:        u.Username,
		Email:           u.Email,
		IsActive:        u.IsActive,
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
		PersonFirstName: u.PersonFirstName,
		PersonLastName:  u.PersonLastName,
		CompanyName:     u.CompanyName,
		RoleName:        u.RoleName,
	}
}
