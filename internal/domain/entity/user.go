package entity

import "time"

// User cuenta de acceso al sistema. Referencia 1:1 a una Person activa y
// pertenece a una Company con un Role asignado.
type User struct {
	ID           string
	PersonID     string
	CompanyID    string
	RoleID       string
	Username     string // único entre usuarios activos
	PasswordHash string // bcrypt, nunca se serializa hacia afuera
	Email        *string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joins opcionales (includeDetails)
	PersonFirstName *string
	PersonLastName  *string
	CompanyName     *string
	RoleName        *string
}
