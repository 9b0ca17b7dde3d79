package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductPatch campos opcionales para actualización parcial de un producto.
type ProductPatch struct {
	CategoryID    *string
	SubcategoryID *string
	Name          *string
	Description   *string
	SKU           *string
	Price         *decimal.Decimal
	Cost          *decimal.Decimal
	Stock         *int
	IsActive      *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p ProductPatch) IsZero() bool {
	return p.CategoryID == nil && p.SubcategoryID == nil && p.Name == nil &&
		p.Description == nil && p.SKU == nil && p.Price == nil &&
		p.Cost == nil && p.Stock == nil && p.IsActive == nil
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Product, error)
	GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	Update(ctx context.Context, id, companyID string, p ProductPatch) (*entity.Product, error)
	// Delete elimina físicamente el producto (hard delete).
	Delete(ctx context.Context, id, companyID string) error
}
