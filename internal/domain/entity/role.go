package entity

import "time"

// Nombres de roles con semántica especial en el sistema.
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleCashier    = "Cashier"
)

// SystemRoles roles protegidos: no pueden eliminarse.
var SystemRoles = []string{RoleSuperAdmin, RoleAdmin, RoleManager, RoleCashier}

// IsSystemRole informa si el nombre corresponde a un rol del sistema.
func IsSystemRole(name string) bool {
	for _, r := range SystemRoles {
		if r == name {
			return true
		}
	}
	return false
}

// Role rol de usuario con documento de permisos de forma libre (JSONB).
type Role struct {
	ID          string
	Name        string // único
	Description *string
	Permissions map[string]any
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	UsersCount *int // con includeStats
}
