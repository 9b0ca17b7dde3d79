package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TaxPatch campos opcionales para actualización parcial de un impuesto.
type TaxPatch struct {
	Name     *string
	Rate     *decimal.Decimal
	IsActive *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p TaxPatch) IsZero() bool {
	return p.Name == nil && p.Rate == nil && p.IsActive == nil
}

// TaxRepository define el puerto de persistencia para Tax.
type TaxRepository interface {
	Create(ctx context.Context, tax *entity.Tax) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Tax, error)
	GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Tax, error)
	List(ctx context.Context, f TaxFilter) ([]*entity.Tax, int, error)
	Update(ctx context.Context, id, companyID string, p TaxPatch) (*entity.Tax, error)
	// Delete elimina físicamente el impuesto (hard delete).
	Delete(ctx context.Context, id, companyID string) error
}
