package entity

import "time"

// Store representa una tienda/sucursal que pertenece a una Company.
// El código es único dentro de la compañía.
type Store struct {
	ID        string
	CompanyID string
	Name      string
	Code      string
	Address   *string
	Phone     *string
	Email     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joins opcionales
	CompanyName *string // con includeCompany
	UsersCount  *int    // con includeStats
}
