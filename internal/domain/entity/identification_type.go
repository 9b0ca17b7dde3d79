package entity

import "time"

// IdentificationType tipo de documento de identidad (CC, CE, NIT, pasaporte...).
// Es un catálogo global: no está scoping por compañía y solo "Super Admin" lo administra.
type IdentificationType struct {
	ID          string
	Name        string
	Code        string // único (CC, CE, TI, NIT, PA...)
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	PersonsCount *int // con includeStats
}
