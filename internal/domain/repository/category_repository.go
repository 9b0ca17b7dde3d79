package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CategoryPatch campos opcionales para actualización parcial de una categoría.
type CategoryPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p CategoryPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.IsActive == nil
}

// CategoryRepository define el puerto de persistencia para Category.
// Todas las operaciones llevan companyID en el WHERE: una categoría nunca es
// visible ni mutable fuera de su compañía.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Category, error)
	GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Category, error)
	List(ctx context.Context, f CategoryFilter) ([]*entity.Category, int, error)
	Update(ctx context.Context, id, companyID string, p CategoryPatch) (*entity.Category, error)
	// CountActiveProducts cuenta productos activos que referencian la categoría.
	CountActiveProducts(ctx context.Context, id string) (int, error)
	SoftDelete(ctx context.Context, id, companyID string) error
}
