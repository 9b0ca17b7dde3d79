package entity

import "time"

// AuthUser es el perfil desnormalizado del usuario autenticado (usuario +
// persona + empresa + rol) que el middleware adjunta a cada request.
//
// Centraliza la política de scoping multi-tenant: los servicios consultan
// IsSuperAdmin/CanAccessCompany/ResolveCompanyID en lugar de comparar
// nombres de rol por su cuenta.
type AuthUser struct {
	ID           string
	Username     string
	Email        *string
	PersonID     string
	CompanyID    string
	RoleID       string
	PasswordHash string // solo poblado en el flujo de login; nunca se serializa
	LastLogin    *time.Time

	Person  PersonSummary
	Company CompanySummary
	Role    RoleSummary
}

// PersonSummary datos mínimos de la persona asociada.
type PersonSummary struct {
	ID                   string
	FirstName            string
	LastName             string
	IdentificationNumber string
}

// CompanySummary datos mínimos de la empresa del usuario.
type CompanySummary struct {
	ID   string
	Name string
}

// RoleSummary datos mínimos del rol del usuario.
type RoleSummary struct {
	ID          string
	Name        string
	Permissions map[string]any
}

// IsSuperAdmin informa si el actor tiene el rol privilegiado que omite el
// scoping por compañía.
func (u *AuthUser) IsSuperAdmin() bool {
	return u.Role.Name == RoleSuperAdmin
}

// CanAccessCompany informa si el actor puede operar sobre recursos de la
// compañía indicada.
func (u *AuthUser) CanAccessCompany(companyID string) bool {
	return u.IsSuperAdmin() || u.CompanyID == companyID
}

// ResolveCompanyID devuelve la compañía efectiva para una operación:
// solo "Super Admin" puede actuar sobre una compañía distinta a la propia;
// para el resto, cualquier companyId solicitado se ignora.
func (u *AuthUser) ResolveCompanyID(requested string) string {
	if requested != "" && u.IsSuperAdmin() {
		return requested
	}
	return u.CompanyID
}

// ScopeFilter devuelve el company_id al que deben restringirse los listados:
// vacío para "Super Admin" (sin restricción), la compañía propia para el resto.
func (u *AuthUser) ScopeFilter() string {
	if u.IsSuperAdmin() {
		return ""
	}
	return u.CompanyID
}
