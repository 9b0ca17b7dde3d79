package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

// UpdateCategoryRequest entrada de actualización parcial de una categoría.
// Un patch vacío es un error de validación, no un no-op.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	IsActive    *bool   `json:"isActive"`
}

// ListCategoriesQuery filtros de listado de categorías.
type ListCategoriesQuery struct {
	ListQuery
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCategoryResponse mapea la entidad a su representación pública.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateSubcategoryRequest entrada para crear una subcategoría.
type CreateSubcategoryRequest struct {
	CategoryID  string  `json:"categoryId" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

// UpdateSubcategoryRequest entrada de actualización parcial de una subcategoría.
type UpdateSubcategoryRequest struct {
	CategoryID  *string `json:"categoryId" validate:"omitempty,uuid4"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	IsActive    *bool   `json:"isActive"`
}

// ListSubcategoriesQuery filtros de listado de subcategorías.
type ListSubcategoriesQuery struct {
	ListQuery
	CategoryID string `query:"categoryId"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	CategoryID   string    `json:"categoryId"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CategoryName *string   `json:"categoryName,omitempty"`
}

// NewSubcategoryResponse mapea la entidad a su representación pública.
func NewSubcategoryResponse(s *entity.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		CategoryID:   s.CategoryID,
		Name:         s.Name,
		Description:  s.Description,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		CategoryName: s.CategoryName,
	}
}
