package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CompanyPatch campos opcionales para actualización parcial (SET dinámico).
type CompanyPatch struct {
	Name     *string
	TaxID    *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p CompanyPatch) IsZero() bool {
	return p.Name == nil && p.TaxID == nil && p.Email == nil &&
		p.Phone == nil && p.Address == nil && p.IsActive == nil
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve nil, nil si no existe o está fuera del scope indicado.
	// Con withStats incluye conteos de tiendas y usuarios activos.
	GetByID(ctx context.Context, id, scopeCompanyID string, withStats bool) (*entity.Company, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error)
	List(ctx context.Context, f CompanyFilter) ([]*entity.Company, int, error)
	// Update aplica solo los campos presentes del patch; nil, nil si no existe.
	Update(ctx context.Context, id string, p CompanyPatch) (*entity.Company, error)
	// CountActiveDependents cuenta tiendas y usuarios activos de la compañía.
	CountActiveDependents(ctx context.Context, id string) (stores, users int, err error)
	SoftDelete(ctx context.Context, id string) error
}
