package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// IdentificationTypePatch campos opcionales para actualización parcial.
type IdentificationTypePatch struct {
	Name        *string
	Code        *string
	Description *string
	IsActive    *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p IdentificationTypePatch) IsZero() bool {
	return p.Name == nil && p.Code == nil && p.Description == nil && p.IsActive == nil
}

// IdentificationTypeRepository define el puerto de persistencia para IdentificationType.
type IdentificationTypeRepository interface {
	Create(ctx context.Context, it *entity.IdentificationType) error
	GetByID(ctx context.Context, id string) (*entity.IdentificationType, error)
	GetByCode(ctx context.Context, code string) (*entity.IdentificationType, error)
	List(ctx context.Context, f IdentificationTypeFilter) ([]*entity.IdentificationType, int, error)
	Update(ctx context.Context, id string, p IdentificationTypePatch) (*entity.IdentificationType, error)
	CountActivePersons(ctx context.Context, id string) (int, error)
	SoftDelete(ctx context.Context, id string) error
}
