package entity

import "time"

// Person datos personales de una persona natural. El número de identificación
// es único por tipo de identificación entre personas activas.
type Person struct {
	ID                   string
	IdentificationTypeID string
	IdentificationNumber string
	FirstName            string
	LastName             string
	Email                *string
	Phone                *string
	Address              *string
	BirthDate            *time.Time
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Join opcional (includeType)
	IdentificationTypeName *string
	IdentificationTypeCode *string
	UsersCount             *int
}
