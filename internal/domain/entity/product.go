package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo, scoping por compañía. SKU único por compañía.
// La subcategoría, si existe, debe pertenecer a la misma categoría.
type Product struct {
	ID            string
	CompanyID     string
	CategoryID    string
	SubcategoryID *string
	Name          string
	Description   *string
	SKU           string
	Price         decimal.Decimal
	Cost          decimal.Decimal
	Stock         int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joins con categoría/subcategoría en listados
	CategoryName    *string
	SubcategoryName *string
}
