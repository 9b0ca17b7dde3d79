package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// StorePatch campos opcionales para actualización parcial de una tienda.
type StorePatch struct {
	Name     *string
	Code     *string
	Address  *string
	Phone    *string
	Email    *string
	IsActive *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p StorePatch) IsZero() bool {
	return p.Name == nil && p.Code == nil && p.Address == nil &&
		p.Phone == nil && p.Email == nil && p.IsActive == nil
}

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	// GetByID devuelve nil, nil si no existe o está fuera del scope indicado.
	GetByID(ctx context.Context, id, scopeCompanyID string) (*entity.Store, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Store, error)
	List(ctx context.Context, f StoreFilter) ([]*entity.Store, int, error)
	Update(ctx context.Context, id string, p StorePatch) (*entity.Store, error)
	// CountActiveUsers cuenta usuarios activos de la compañía dueña de la tienda.
	CountActiveUsers(ctx context.Context, storeID string) (int, error)
	SoftDelete(ctx context.Context, id string) error
}
