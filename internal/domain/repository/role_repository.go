package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// RolePatch campos opcionales para actualización parcial de un rol.
type RolePatch struct {
	Name        *string
	Description *string
	Permissions map[string]any // nil = sin cambio
	IsActive    *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p RolePatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Permissions == nil && p.IsActive == nil
}

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context, f RoleFilter) ([]*entity.Role, int, error)
	Update(ctx context.Context, id string, p RolePatch) (*entity.Role, error)
	CountActiveUsers(ctx context.Context, id string) (int, error)
	SoftDelete(ctx context.Context, id string) error
}
