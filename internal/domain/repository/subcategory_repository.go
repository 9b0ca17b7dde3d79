package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// SubcategoryPatch campos opcionales para actualización parcial de una subcategoría.
type SubcategoryPatch struct {
	CategoryID  *string
	Name        *string
	Description *string
	IsActive    *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p SubcategoryPatch) IsZero() bool {
	return p.CategoryID == nil && p.Name == nil && p.Description == nil && p.IsActive == nil
}

// SubcategoryRepository define el puerto de persistencia para Subcategory.
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *entity.Subcategory) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Subcategory, error)
	GetByCategoryAndName(ctx context.Context, companyID, categoryID, name string) (*entity.Subcategory, error)
	List(ctx context.Context, f SubcategoryFilter) ([]*entity.Subcategory, int, error)
	Update(ctx context.Context, id, companyID string, p SubcategoryPatch) (*entity.Subcategory, error)
	// CountActiveProducts cuenta productos activos que referencian la subcategoría.
	CountActiveProducts(ctx context.Context, id string) (int, error)
	SoftDelete(ctx context.Context, id, companyID string) error
}
