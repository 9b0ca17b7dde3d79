package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthUserResponse perfil desnormalizado del usuario autenticado.
type AuthUserResponse struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     *string           `json:"email"`
	LastLogin *time.Time        `json:"lastLogin"`
	Person    PersonSummaryDTO  `json:"person"`
	Company   CompanySummaryDTO `json:"company"`
	Role      RoleSummaryDTO    `json:"role"`
}

// PersonSummaryDTO datos mínimos de la persona asociada.
type PersonSummaryDTO struct {
	ID                   string `json:"id"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	IdentificationNumber string `json:"identificationNumber"`
}

// CompanySummaryDTO datos mínimos de la empresa del usuario.
type CompanySummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleSummaryDTO datos mínimos del rol del usuario.
type RoleSummaryDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Permissions map[string]any `json:"permissions"`
}

// LoginResponse token emitido junto al perfil del usuario.
type LoginResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}

// NewAuthUserResponse mapea el perfil de dominio a su representación pública.
// El hash de contraseña nunca viaja.
func NewAuthUserResponse(u *entity.AuthUser) AuthUserResponse {
	return AuthUserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		LastLogin: u.LastLogin,
		Person: PersonSummaryDTO{
			ID:                   u.Person.ID,
			FirstName:            u.Person.FirstName,
			LastName:             u.Person.LastName,
			IdentificationNumber: u.Person.IdentificationNumber,
		},
		Company: CompanySummaryDTO{ID: u.Company.ID, Name: u.Company.Name},
		Role: RoleSummaryDTO{
			ID:          u.Role.ID,
			Name:        u.Role.Name,
			Permissions: u.Role.Permissions,
		},
	}
}
