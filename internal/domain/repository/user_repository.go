package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// UserPatch campos opcionales para actualización parcial de un usuario.
// PasswordHash llega ya hasheado desde el caso de uso.
type UserPatch struct {
	PersonID     *string
	CompanyID    *string
	RoleID       *string
	Username     *string
	PasswordHash *string
	Email        *string
	IsActive     *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p UserPatch) IsZero() bool {
	return p.PersonID == nil && p.CompanyID == nil && p.RoleID == nil &&
		p.Username == nil && p.PasswordHash == nil && p.Email == nil && p.IsActive == nil
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID devuelve nil, nil si no existe o está fuera del scope indicado.
	GetByID(ctx context.Context, id, scopeCompanyID string) (*entity.User, error)
	// GetByUsername busca un usuario activo por username (chequeo de unicidad).
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetActiveByPersonID busca el usuario activo asociado a una persona (regla 1:1).
	GetActiveByPersonID(ctx context.Context, personID string) (*entity.User, error)
	List(ctx context.Context, f UserFilter) ([]*entity.User, int, error)
	Update(ctx context.Context, id string, p UserPatch) (*entity.User, error)
	SoftDelete(ctx context.Context, id string) error

	// Flujo de credenciales: perfil completo (usuario + persona + empresa + rol).
	// GetProfileByUsername incluye el hash de contraseña para verificación.
	GetProfileByUsername(ctx context.Context, username string) (*entity.AuthUser, error)
	GetProfileByID(ctx context.Context, id string) (*entity.AuthUser, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
