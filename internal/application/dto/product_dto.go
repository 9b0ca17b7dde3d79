package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los montos llegan como
// string decimal para no perder precisión.
type CreateProductRequest struct {
	CategoryID    string          `json:"categoryId" validate:"required,uuid4"`
	SubcategoryID *string         `json:"subcategoryId" validate:"omitempty,uuid4"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   *string         `json:"description" validate:"omitempty,max=500"`
	SKU           string          `json:"sku" validate:"required,min=1,max=50"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada de actualización parcial de un producto.
type UpdateProductRequest struct {
	CategoryID    *string          `json:"categoryId" validate:"omitempty,uuid4"`
	SubcategoryID *string          `json:"subcategoryId" validate:"omitempty,uuid4"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	SKU           *string          `json:"sku" validate:"omitempty,min=1,max=50"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	IsActive      *bool            `json:"isActive"`
}

// ListProductsQuery filtros de listado de productos.
type ListProductsQuery struct {
	ListQuery
	CategoryID    string `query:"categoryId"`
	SubcategoryID string `query:"subcategoryId"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"companyId"`
	CategoryID      string          `json:"categoryId"`
	SubcategoryID   *string         `json:"subcategoryId"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Stock           int             `json:"stock"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	CategoryName    *string         `json:"categoryName,omitempty"`
	SubcategoryName *string         `json:"subcategoryName,omitempty"`
}

// NewProductResponse mapea la entidad a su representación pública.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		CategoryID:      p.CategoryID,
		SubcategoryID:   p.SubcategoryID,
		Name:            p.Name,
		Description:     p.Description,
		SKU:             p.SKU,
		Price:           p.Price,
		Cost:            p.Cost,
		Stock:           p.Stock,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		CategoryName:    p.CategoryName,
		SubcategoryName: p.SubcategoryName,
	}
}
