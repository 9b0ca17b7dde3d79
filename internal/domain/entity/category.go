package entity

import "time"

// Category categoría de productos, scoping por compañía. Nombre único dentro
// de la compañía entre categorías activas.
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subcategory subcategoría de productos. Pertenece a una Category de la misma
// compañía; nombre único por (compañía, categoría).
type Subcategory struct {
	ID          string
	CompanyID   string
	CategoryID  string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CategoryName *string // join opcional
}
