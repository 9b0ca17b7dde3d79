package entity

import "time"

// Company representa una organización/tenant del sistema. Todos los recursos
// de catálogo y de personal cuelgan de una Company.
type Company struct {
	ID        string
	Name      string
	TaxID     *string // NIT colombiano; único entre compañías activas cuando está presente
	Email     *string
	Phone     *string
	Address   *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Agregados opcionales (solo con includeStats)
	StoresCount *int
	UsersCount  *int
}
