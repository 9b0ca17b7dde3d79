package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreateRoleRequest entrada para crear un rol. Permissions es un documento
// libre que el sistema almacena sin interpretar.
type CreateRoleRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=300"`
	Permissions map[string]any `json:"permissions"`
}

// UpdateRoleRequest entrada de actualización parcial de un rol.
type UpdateRoleRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=300"`
	Permissions map[string]any `json:"permissions"`
	IsActive    *bool          `json:"isActive"`
}

// ListRolesQuery filtros de listado de roles.
type ListRolesQuery struct {
	ListQuery
	IncludeStats bool `query:"includeStats"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Permissions map[string]any `json:"permissions"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	UsersCount  *int           `json:"usersCount,omitempty"`
}

// NewRoleResponse mapea la entidad a su representación pública.
func NewRoleResponse(r *entity.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		UsersCount:  r.UsersCount,
	}
}
