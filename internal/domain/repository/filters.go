package repository

import "time"

// ListParams filtros comunes a todos los listados: búsqueda por substring,
// bandera de activo, rango de fechas de creación, ordenamiento y paginación.
// Los campos de orden se validan contra una lista blanca en cada adaptador.
type ListParams struct {
	Search      string
	IsActive    *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortOrder   string // ASC | DESC
	Limit       int
	Offset      int
}

// CompanyFilter filtros de listado de compañías.
type CompanyFilter struct {
	ListParams
	ScopeCompanyID string // restricción de tenant; vacío = sin restricción (Super Admin)
	IncludeStats   bool
}

// StoreFilter filtros de listado de tiendas.
type StoreFilter struct {
	ListParams
	ScopeCompanyID string
	CompanyID      string // filtro explícito (solo efectivo para Super Admin)
	IncludeCompany bool
	IncludeStats   bool
}

// IdentificationTypeFilter filtros de listado de tipos de identificación.
type IdentificationTypeFilter struct {
	ListParams
	IncludeStats bool
}

// RoleFilter filtros de listado de roles.
type RoleFilter struct {
	ListParams
	IncludeStats bool
}

// PersonFilter filtros de listado de personas.
type PersonFilter struct {
	ListParams
	IdentificationTypeID string
	IncludeType          bool
}

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	ListParams
	ScopeCompanyID string
	CompanyID      string
	RoleID         string
	IncludeDetails bool
}

// CategoryFilter filtros de listado de categorías (siempre scoping por compañía).
type CategoryFilter struct {
	ListParams
	CompanyID string
}

// SubcategoryFilter filtros de listado de subcategorías.
type SubcategoryFilter struct {
	ListParams
	CompanyID  string
	CategoryID string
}

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	ListParams
	CompanyID     string
	CategoryID    string
	SubcategoryID string
}

// TaxFilter filtros de listado de impuestos.
type TaxFilter struct {
	ListParams
	CompanyID string
}
